package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/promptdeck/promptdeck-cli/pkg/models"
)

// Form focus order: name, description, content.
const (
	focusName = iota
	focusDescription
	focusContent
	focusCount
)

// PromptForm is the single shared form behind both create and edit. The
// editing target id discriminates the mode: zero means create. While a
// submission is in flight only completion or failure releases the form;
// Reset during that window is the caller's bug, guarded upstream.
type PromptForm struct {
	active     bool
	editingID  int64
	submitting bool
	errMsg     string
	focus      int

	name        textinput.Model
	description textinput.Model
	content     textarea.Model

	width  int
	height int
}

func NewPromptForm() *PromptForm {
	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = 120

	description := textinput.New()
	description.Placeholder = "Description (optional)"
	description.CharLimit = 240

	content := textarea.New()
	content.Placeholder = "Prompt content"

	return &PromptForm{
		name:        name,
		description: description,
		content:     content,
	}
}

// OpenForCreate clears the draft and opens the form in create mode.
func (f *PromptForm) OpenForCreate() {
	f.clear()
	f.active = true
}

// OpenForEdit pre-populates the draft from the record and marks it as the
// editing target.
func (f *PromptForm) OpenForEdit(p models.Prompt) {
	f.clear()
	f.editingID = p.ID
	draft := models.DraftFromPrompt(p)
	f.name.SetValue(draft.Name)
	f.description.SetValue(draft.Description)
	f.content.SetValue(draft.Content)
	f.active = true
}

// Reset discards the draft and returns the form to create-mode defaults.
func (f *PromptForm) Reset() {
	f.clear()
	f.active = false
}

func (f *PromptForm) clear() {
	f.editingID = 0
	f.submitting = false
	f.errMsg = ""
	f.focus = focusName
	f.name.SetValue("")
	f.description.SetValue("")
	f.content.SetValue("")
	f.name.Focus()
	f.description.Blur()
	f.content.Blur()
}

func (f *PromptForm) Active() bool     { return f.active }
func (f *PromptForm) Submitting() bool { return f.submitting }
func (f *PromptForm) EditingID() int64 { return f.editingID }
func (f *PromptForm) Error() string    { return f.errMsg }

// Editing reports whether the form is in edit mode.
func (f *PromptForm) Editing() bool { return f.editingID != 0 }

// Draft snapshots the current field values.
func (f *PromptForm) Draft() models.Draft {
	return models.Draft{
		Name:        f.name.Value(),
		Description: f.description.Value(),
		Content:     f.content.Value(),
	}
}

// SetError sets the inline error without touching the draft.
func (f *PromptForm) SetError(msg string) {
	f.errMsg = msg
}

// BeginSubmit arms the in-flight guard and clears any previous error.
func (f *PromptForm) BeginSubmit() {
	f.submitting = true
	f.errMsg = ""
}

// FinishSubmit releases the guard after a failed submission, keeping the
// form open with the failure's message inline.
func (f *PromptForm) FinishSubmit(errMsg string) {
	f.submitting = false
	f.errMsg = errMsg
}

// Focus returns the command that starts cursor blinking in the first field.
func (f *PromptForm) Focus() tea.Cmd {
	return textinput.Blink
}

// SetSize updates the form layout dimensions.
func (f *PromptForm) SetSize(width, height int) {
	f.width = width
	f.height = height
	inner := width - 12
	if inner < 20 {
		inner = 20
	}
	f.name.Width = inner
	f.description.Width = inner
	f.content.SetWidth(inner)
	rows := height - 16
	if rows < 3 {
		rows = 3
	}
	if rows > 12 {
		rows = 12
	}
	f.content.SetHeight(rows)
}

// UpdateFields routes a message to the focused field, advancing focus on
// tab / shift+tab (and enter within the single-line inputs).
func (f *PromptForm) UpdateFields(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab":
			return f.cycleFocus(1)
		case "shift+tab":
			return f.cycleFocus(-1)
		case "enter":
			if f.focus != focusContent {
				return f.cycleFocus(1)
			}
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case focusName:
		f.name, cmd = f.name.Update(msg)
	case focusDescription:
		f.description, cmd = f.description.Update(msg)
	case focusContent:
		f.content, cmd = f.content.Update(msg)
	}
	return cmd
}

func (f *PromptForm) cycleFocus(delta int) tea.Cmd {
	f.focus = (f.focus + delta + focusCount) % focusCount
	f.name.Blur()
	f.description.Blur()
	f.content.Blur()

	switch f.focus {
	case focusName:
		return f.name.Focus()
	case focusDescription:
		return f.description.Focus()
	default:
		return f.content.Focus()
	}
}
