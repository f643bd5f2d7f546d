package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/promptdeck/promptdeck-cli/pkg/client"
	"github.com/promptdeck/promptdeck-cli/pkg/models"
)

// genericErrorMessage is shown when a failure carries no message of its own.
const genericErrorMessage = "Something went wrong. Please try again."

type promptsLoadedMsg struct {
	prompts []models.Prompt
}

type loadFailedMsg struct {
	err error
}

// promptSavedMsg reports a successful create (created=true, prepend) or
// update (replace in place by id).
type promptSavedMsg struct {
	prompt  models.Prompt
	created bool
}

type saveFailedMsg struct {
	err error
}

type promptDeletedMsg struct {
	id int64
}

type deleteFailedMsg struct {
	id  int64
	err error
}

type copyResultMsg struct {
	id  int64
	err error
}

type clearCopiedMsg struct {
	gen uint64
}

func loadPrompts(p Persister) tea.Cmd {
	return func() tea.Msg {
		prompts, err := p.List(context.Background())
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return promptsLoadedMsg{prompts: prompts}
	}
}

// savePrompt branches on the editing target: a zero id means create.
// The calls run without cancellation; the form's in-flight guard is the
// only protection against duplicate submission.
func savePrompt(p Persister, editingID int64, draft models.Draft) tea.Cmd {
	return func() tea.Msg {
		if editingID != 0 {
			prompt, err := p.Update(context.Background(), editingID, draft)
			if err != nil {
				return saveFailedMsg{err: err}
			}
			return promptSavedMsg{prompt: *prompt}
		}
		prompt, err := p.Create(context.Background(), draft)
		if err != nil {
			return saveFailedMsg{err: err}
		}
		return promptSavedMsg{prompt: *prompt, created: true}
	}
}

func deletePrompt(p Persister, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := p.Delete(context.Background(), id); err != nil {
			return deleteFailedMsg{id: id, err: err}
		}
		return promptDeletedMsg{id: id}
	}
}

func (m *GridModel) copyPrompt(prompt models.Prompt) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		return copyResultMsg{id: prompt.ID, err: copyText(prompt.Content)}
	}
}

func notify(kind NotifyKind, title, message string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{Kind: kind, Title: title, Message: message}
	}
}

// errorMessage extracts the human-readable message from a collaborator
// failure, falling back to a generic message when it carries none.
func errorMessage(err error) string {
	if err == nil {
		return genericErrorMessage
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message == "" {
			return genericErrorMessage
		}
		return apiErr.Message
	}
	if err.Error() == "" {
		return genericErrorMessage
	}
	return err.Error()
}
