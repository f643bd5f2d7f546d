package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/promptdeck/promptdeck-cli/pkg/models"
)

// DeleteConfirm is the two-step delete flow: idle, then a pending target
// with the dialog open, then idle again. The deleting flag guards against
// re-entrant confirmation while a delete is outstanding.
type DeleteConfirm struct {
	active   bool
	target   models.Prompt
	pending  bool
	deleting bool
}

func NewDeleteConfirm() *DeleteConfirm {
	return &DeleteConfirm{}
}

// Request records the prompt as the pending target and opens the dialog.
func (d *DeleteConfirm) Request(p models.Prompt) {
	d.active = true
	d.target = p
	d.pending = true
	d.deleting = false
}

func (d *DeleteConfirm) Active() bool   { return d.active }
func (d *DeleteConfirm) Deleting() bool { return d.deleting }

// Target returns the pending target, if any.
func (d *DeleteConfirm) Target() (models.Prompt, bool) {
	return d.target, d.pending
}

// Begin arms the in-flight guard and returns the target. It refuses while
// a delete is already outstanding or when there is no target.
func (d *DeleteConfirm) Begin() (models.Prompt, bool) {
	if d.deleting || !d.pending {
		return models.Prompt{}, false
	}
	d.deleting = true
	return d.target, true
}

// Finish closes the dialog and clears the pending target and guard. It
// runs on success and failure alike.
func (d *DeleteConfirm) Finish() {
	d.active = false
	d.target = models.Prompt{}
	d.pending = false
	d.deleting = false
}

// Cancel dismisses the dialog without side effects. Ignored while a
// delete is in flight.
func (d *DeleteConfirm) Cancel() {
	if d.deleting {
		return
	}
	d.Finish()
}

// View renders the confirmation dialog.
func (d *DeleteConfirm) View(width int) string {
	if !d.active {
		return ""
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger))

	dialogWidth := 50
	if width > 0 && dialogWidth > width-4 {
		dialogWidth = width - 4
	}
	contentWidth := dialogWidth - 4

	center := lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center)

	title := center.Render(headerStyle.Render("Delete Prompt"))
	message := center.Render(fmt.Sprintf("Delete '%s'?", d.target.Name))
	warning := center.Render(
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).
			Render("This cannot be undone."))

	options := "y: delete  n: cancel"
	if d.deleting {
		options = "deleting..."
	}
	footer := center.Render(HelpStyle.Render(options))

	body := lipgloss.JoinVertical(lipgloss.Left, title, "", message, warning, "", footer)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 1).
		Width(dialogWidth).
		Render(body)
}
