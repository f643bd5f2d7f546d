package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// View renders the form as a bordered modal.
func (f *PromptForm) View() string {
	if !f.active {
		return ""
	}

	title := "New Prompt"
	if f.Editing() {
		title = "Edit Prompt"
	}

	sections := []string{
		TitleStyle.Render(title),
		"",
		FormLabelStyle.Render("Name"),
		f.name.View(),
		"",
		FormLabelStyle.Render("Description"),
		f.description.View(),
		"",
		FormLabelStyle.Render("Content"),
		f.content.View(),
	}

	if f.errMsg != "" {
		sections = append(sections, "", ErrorTextStyle.Render(f.errMsg))
	}

	footer := "tab: next field  ctrl+s: save  esc: cancel"
	if f.submitting {
		footer = "saving..."
		sections = append(sections, "", SubmittingStyle.Render(footer))
	} else {
		sections = append(sections, "", HelpStyle.Render(footer))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return ActiveBorderStyle.Padding(1, 2).Render(body)
}
