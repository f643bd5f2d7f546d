package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name    string
		draft   Draft
		wantErr string
	}{
		{"valid", Draft{Name: "greeting", Content: "hello"}, ""},
		{"valid without description", Draft{Name: "n", Content: "c"}, ""},
		{"missing name", Draft{Content: "hello"}, "name is required"},
		{"whitespace name", Draft{Name: "   ", Content: "hello"}, "name is required"},
		{"missing content", Draft{Name: "greeting"}, "content is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestDraftFromPrompt(t *testing.T) {
	p := Prompt{ID: 7, Name: "n", Description: "d", Content: "c"}
	draft := DraftFromPrompt(p)
	assert.Equal(t, Draft{Name: "n", Description: "d", Content: "c"}, draft)
}
