package models

import (
	"fmt"
	"strings"
	"time"
)

// Prompt is a stored text snippet. The ID is assigned by the server and
// never changes; every other field is editable.
type Prompt struct {
	ID          int64     `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Content     string    `json:"content" yaml:"content"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
}

// Draft holds the editable fields of a prompt while they are being
// composed in the form, before submission.
type Draft struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Content     string `json:"content" yaml:"content"`
}

// DraftFromPrompt copies a prompt's editable fields into a draft for editing.
func DraftFromPrompt(p Prompt) Draft {
	return Draft{
		Name:        p.Name,
		Description: p.Description,
		Content:     p.Content,
	}
}

// Validate enforces the required fields. Description is optional.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(d.Content) == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}
