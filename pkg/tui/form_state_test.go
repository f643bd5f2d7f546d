package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptdeck/promptdeck-cli/pkg/models"
)

func TestPromptForm_OpenForCreate(t *testing.T) {
	f := NewPromptForm()
	f.SetError("stale")
	f.OpenForCreate()

	assert.True(t, f.Active())
	assert.False(t, f.Editing())
	assert.Equal(t, int64(0), f.EditingID())
	assert.Empty(t, f.Error())
	assert.Equal(t, models.Draft{}, f.Draft())
}

func TestPromptForm_OpenForEdit(t *testing.T) {
	f := NewPromptForm()
	p := models.Prompt{ID: 3, Name: "three", Description: "d3", Content: "c3"}
	f.OpenForEdit(p)

	assert.True(t, f.Active())
	assert.True(t, f.Editing())
	assert.Equal(t, int64(3), f.EditingID())
	assert.Equal(t, models.DraftFromPrompt(p), f.Draft())
}

func TestPromptForm_Reset(t *testing.T) {
	f := NewPromptForm()
	f.OpenForEdit(models.Prompt{ID: 3, Name: "three", Content: "c3"})
	f.BeginSubmit()
	f.Reset()

	assert.False(t, f.Active())
	assert.False(t, f.Submitting())
	assert.Equal(t, int64(0), f.EditingID())
	assert.Equal(t, models.Draft{}, f.Draft())
}

func TestPromptForm_SubmitLifecycle(t *testing.T) {
	f := NewPromptForm()
	f.OpenForCreate()

	f.BeginSubmit()
	assert.True(t, f.Submitting())
	assert.Empty(t, f.Error())

	f.FinishSubmit("quota exceeded")
	assert.False(t, f.Submitting())
	assert.Equal(t, "quota exceeded", f.Error())
	assert.True(t, f.Active(), "failure keeps the form open")
}

func TestPromptForm_FieldInput(t *testing.T) {
	f := NewPromptForm()
	f.OpenForCreate()

	f.UpdateFields(keyMsg("A"))
	assert.Equal(t, "A", f.Draft().Name)

	// Tab moves to description; typing lands there.
	f.UpdateFields(keyMsg("tab"))
	f.UpdateFields(keyMsg("x"))
	draft := f.Draft()
	assert.Equal(t, "A", draft.Name)
	assert.Equal(t, "x", draft.Description)
}

func TestPromptForm_EnterAdvancesSingleLineFields(t *testing.T) {
	f := NewPromptForm()
	f.OpenForCreate()

	f.UpdateFields(keyMsg("enter")) // name -> description
	f.UpdateFields(keyMsg("enter")) // description -> content
	f.UpdateFields(keyMsg("z"))

	require.Equal(t, "z", f.Draft().Content)
}
