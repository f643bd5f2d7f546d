package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// NotifyKind classifies a notification.
type NotifyKind int

const (
	NotifyInfo NotifyKind = iota
	NotifyError
)

// NotifyMsg is a fire-and-forget user notification shown in the status
// bar and cleared after Duration (3s when zero).
type NotifyMsg struct {
	Kind     NotifyKind
	Title    string
	Message  string
	Duration time.Duration
}

type clearNotificationMsg struct {
	gen uint64
}

const defaultNotifyDuration = 3 * time.Second

type App struct {
	grid   *GridModel
	width  int
	height int

	notification *NotifyMsg
	notifyGen    uint64
}

// NewApp builds the root model around the persistence collaborator.
func NewApp(persister Persister, logger *zap.Logger) *App {
	return &App{
		grid: NewGridModel(persister, logger),
	}
}

func (a *App) Init() tea.Cmd {
	return a.grid.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.grid.SetSize(msg.Width, msg.Height-1) // reserve the status bar line

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case NotifyMsg:
		a.notification = &msg
		a.notifyGen++
		gen := a.notifyGen
		duration := msg.Duration
		if duration <= 0 {
			duration = defaultNotifyDuration
		}
		return a, tea.Tick(duration, func(time.Time) tea.Msg {
			return clearNotificationMsg{gen: gen}
		})

	case clearNotificationMsg:
		// A newer notification restarts the clock; stale ticks are ignored.
		if msg.gen == a.notifyGen {
			a.notification = nil
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.grid, cmd = a.grid.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	content := a.grid.View()
	if a.notification != nil {
		style := NotifyInfoStyle
		if a.notification.Kind == NotifyError {
			style = NotifyErrorStyle
		}
		text := a.notification.Title
		if a.notification.Message != "" {
			text += ": " + a.notification.Message
		}
		content = lipgloss.JoinVertical(lipgloss.Top, content, style.Render(text))
	}
	return content
}
