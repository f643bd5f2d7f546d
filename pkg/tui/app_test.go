package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *App {
	a := NewApp(&fakePersister{}, nil)
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return a
}

func TestApp_NotificationLifecycle(t *testing.T) {
	a := newTestApp()

	model, cmd := a.Update(NotifyMsg{Kind: NotifyInfo, Title: "Copied to clipboard"})
	a = model.(*App)
	require.NotNil(t, cmd, "a clear tick must be scheduled")
	require.NotNil(t, a.notification)
	assert.Contains(t, a.View(), "Copied to clipboard")

	model, _ = a.Update(clearNotificationMsg{gen: a.notifyGen})
	a = model.(*App)
	assert.Nil(t, a.notification)
}

func TestApp_StaleNotificationClearIgnored(t *testing.T) {
	a := newTestApp()

	model, _ := a.Update(NotifyMsg{Kind: NotifyInfo, Title: "first"})
	a = model.(*App)
	staleGen := a.notifyGen

	model, _ = a.Update(NotifyMsg{Kind: NotifyError, Title: "second"})
	a = model.(*App)

	model, _ = a.Update(clearNotificationMsg{gen: staleGen})
	a = model.(*App)
	require.NotNil(t, a.notification, "the newer notification keeps showing")
	assert.Equal(t, "second", a.notification.Title)
}

func TestApp_CtrlCQuits(t *testing.T) {
	a := newTestApp()
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_ViewBeforeSize(t *testing.T) {
	a := NewApp(&fakePersister{}, nil)
	assert.Equal(t, "Loading...", a.View())
}
