package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	cardContentLines = 3
	minCardWidth     = 30
)

func (m *GridModel) View() string {
	if m.form.Active() {
		return m.formOverlay()
	}
	if m.deleteConfirm.Active() {
		return m.confirmOverlay()
	}

	header := TitleStyle.Render("PROMPTDECK") + HelpStyle.Render("  prompt library")

	var body string
	switch {
	case m.loading:
		body = EmptyStateStyle.Render("Loading prompts...")
	case m.loadErr != "":
		body = ErrorTextStyle.Render("Failed to load prompts: " + m.loadErr)
	case len(m.prompts) == 0:
		body = EmptyStateStyle.Render("No prompts yet. Press 'n' to create one.")
	default:
		body = m.renderGrid()
	}

	help := HelpStyle.Render("n: new  e: edit  d: delete  c: copy  r: reload  q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", help)
}

func (m *GridModel) renderGrid() string {
	cardWidth := m.width/gridColumns - 2
	if cardWidth < minCardWidth {
		cardWidth = minCardWidth
	}

	var rows []string
	for i := 0; i < len(m.prompts); i += gridColumns {
		var cards []string
		for j := i; j < i+gridColumns && j < len(m.prompts); j++ {
			cards = append(cards, m.renderCard(j, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *GridModel) renderCard(index, width int) string {
	p := m.prompts[index]
	innerWidth := width - 4

	name := CardNameStyle.Render(truncate.StringWithTail(p.Name, uint(innerWidth), "…"))
	if m.copiedID == p.ID {
		name += CopiedBadgeStyle.Render("  ✓ copied")
	}

	desc := CardDescStyle.Render(truncate.StringWithTail(p.Description, uint(innerWidth), "…"))

	preview := previewLines(p.Content, innerWidth, cardContentLines)
	content := CardContentStyle.Render(preview)

	card := lipgloss.JoinVertical(lipgloss.Left, name, desc, "", content)

	style := InactiveBorderStyle
	if index == m.cursor {
		style = ActiveBorderStyle
	}
	return style.Width(width).Padding(0, 1).Render(card)
}

// previewLines wraps content to width and keeps the first few lines.
func previewLines(content string, width, maxLines int) string {
	wrapped := wordwrap.String(content, width)
	lines := strings.Split(wrapped, "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] += " …"
	}
	for i, line := range lines {
		lines[i] = truncate.StringWithTail(line, uint(width), "…")
	}
	return strings.Join(lines, "\n")
}

func (m *GridModel) formOverlay() string {
	return m.centered(m.form.View())
}

func (m *GridModel) confirmOverlay() string {
	return m.centered(m.deleteConfirm.View(m.width))
}

func (m *GridModel) centered(content string) string {
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
