package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for the selected card
	ColorInactive = "240" // Gray for unselected borders
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray for descriptions
	ColorWarning  = "214" // Orange for warnings
	ColorDanger   = "196" // Red for destructive actions and errors
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorDark     = "235" // Dark for contrast backgrounds
)

// Common styles
var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorActive))

	CardNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWhite))

	CardDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	CardContentStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorNormal))

	CopiedBadgeStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(ColorSuccess))

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	FormLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorNormal))

	SubmittingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim)).
			Italic(true)

	NotifyInfoStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

	NotifyErrorStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(ColorDanger)).
				Foreground(lipgloss.Color(ColorWhite)).
				Padding(0, 1)
)
