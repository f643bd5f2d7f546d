package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptdeck/promptdeck-cli/pkg/models"
)

func TestDeleteConfirm_RequestAndCancel(t *testing.T) {
	d := NewDeleteConfirm()
	assert.False(t, d.Active())

	d.Request(models.Prompt{ID: 5, Name: "five"})
	assert.True(t, d.Active())
	target, ok := d.Target()
	require.True(t, ok)
	assert.Equal(t, int64(5), target.ID)

	d.Cancel()
	assert.False(t, d.Active())
	_, ok = d.Target()
	assert.False(t, ok)
}

func TestDeleteConfirm_BeginGuardsReentry(t *testing.T) {
	d := NewDeleteConfirm()
	d.Request(models.Prompt{ID: 5})

	target, ok := d.Begin()
	require.True(t, ok)
	assert.Equal(t, int64(5), target.ID)
	assert.True(t, d.Deleting())

	_, ok = d.Begin()
	assert.False(t, ok, "second confirm while in flight must refuse")
}

func TestDeleteConfirm_CancelIgnoredWhileDeleting(t *testing.T) {
	d := NewDeleteConfirm()
	d.Request(models.Prompt{ID: 5})
	d.Begin()

	d.Cancel()
	assert.True(t, d.Active(), "cancel is not permitted while a delete is in flight")
	assert.True(t, d.Deleting())
}

func TestDeleteConfirm_FinishClearsEverything(t *testing.T) {
	d := NewDeleteConfirm()
	d.Request(models.Prompt{ID: 5})
	d.Begin()

	d.Finish()
	assert.False(t, d.Active())
	assert.False(t, d.Deleting())
	_, ok := d.Target()
	assert.False(t, ok)
}

func TestDeleteConfirm_BeginWithoutTarget(t *testing.T) {
	d := NewDeleteConfirm()
	_, ok := d.Begin()
	assert.False(t, ok)
}

func TestDeleteConfirm_View(t *testing.T) {
	d := NewDeleteConfirm()
	assert.Empty(t, d.View(80))

	d.Request(models.Prompt{ID: 5, Name: "five"})
	view := d.View(80)
	assert.Contains(t, view, "Delete Prompt")
	assert.Contains(t, view, "five")
}
