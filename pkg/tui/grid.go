package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/promptdeck/promptdeck-cli/pkg/clipboard"
	"github.com/promptdeck/promptdeck-cli/pkg/models"
)

// Persister is the remote persistence collaborator. *client.Client
// satisfies it; tests substitute a fake.
type Persister interface {
	List(ctx context.Context) ([]models.Prompt, error)
	Create(ctx context.Context, draft models.Draft) (*models.Prompt, error)
	Update(ctx context.Context, id int64, draft models.Draft) (*models.Prompt, error)
	Delete(ctx context.Context, id int64) error
}

// copiedDuration is how long the "copied" marker stays on a card.
const copiedDuration = 2 * time.Second

const gridColumns = 2

// GridModel renders the prompt grid and owns the in-memory collection.
// The collection mutates only from collaborator responses; every local
// add, replace, or removal happens in a *Msg handler below.
type GridModel struct {
	persister Persister
	logger    *zap.Logger
	copyText  func(string) error

	prompts []models.Prompt
	cursor  int
	loading bool
	loadErr string

	form          *PromptForm
	deleteConfirm *DeleteConfirm

	// copiedID marks the card showing "copied"; copiedGen invalidates
	// scheduled clears once the marker moves or the record goes away.
	copiedID  int64
	copiedGen uint64

	width  int
	height int
}

// NewGridModel builds the grid around the persistence collaborator.
func NewGridModel(persister Persister, logger *zap.Logger) *GridModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GridModel{
		persister:     persister,
		logger:        logger,
		copyText:      clipboard.Copy,
		form:          NewPromptForm(),
		deleteConfirm: NewDeleteConfirm(),
		loading:       true,
	}
}

func (m *GridModel) Init() tea.Cmd {
	return loadPrompts(m.persister)
}

// SetSize updates the layout dimensions.
func (m *GridModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.form.SetSize(width, height)
}

// Prompts exposes the current collection, used by tests.
func (m *GridModel) Prompts() []models.Prompt {
	return m.prompts
}

// CopiedID returns the id of the card currently showing the copied
// marker, or 0.
func (m *GridModel) CopiedID() int64 {
	return m.copiedID
}

func (m *GridModel) Update(msg tea.Msg) (*GridModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height-1)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case promptsLoadedMsg:
		m.loading = false
		m.loadErr = ""
		m.prompts = msg.prompts
		m.clampCursor()
		return m, nil

	case loadFailedMsg:
		m.loading = false
		m.loadErr = errorMessage(msg.err)
		m.logger.Error("failed to load prompts", zap.Error(msg.err))
		return m, nil

	case promptSavedMsg:
		return m.handleSaved(msg)

	case saveFailedMsg:
		// Form stays open with the inline error; the guard releases so
		// the user can retry or cancel.
		m.form.FinishSubmit(errorMessage(msg.err))
		return m, nil

	case promptDeletedMsg:
		return m.handleDeleted(msg)

	case deleteFailedMsg:
		m.logger.Error("failed to delete prompt",
			zap.Int64("id", msg.id), zap.Error(msg.err))
		m.deleteConfirm.Finish()
		return m, notify(NotifyError, "Delete failed", errorMessage(msg.err))

	case copyResultMsg:
		return m.handleCopyResult(msg)

	case clearCopiedMsg:
		if msg.gen == m.copiedGen {
			m.copiedID = 0
		}
		return m, nil
	}

	if m.form.Active() {
		return m, m.form.UpdateFields(msg)
	}
	return m, nil
}

func (m *GridModel) handleKey(msg tea.KeyMsg) (*GridModel, tea.Cmd) {
	if m.deleteConfirm.Active() {
		return m.handleConfirmKey(msg)
	}
	if m.form.Active() {
		return m.handleFormKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-gridColumns)
	case "down", "j":
		m.moveCursor(gridColumns)
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "n":
		m.form.OpenForCreate()
		return m, m.form.Focus()
	case "e", "enter":
		if p, ok := m.current(); ok {
			m.form.OpenForEdit(p)
			return m, m.form.Focus()
		}
	case "d":
		if p, ok := m.current(); ok {
			m.deleteConfirm.Request(p)
		}
	case "c":
		if p, ok := m.current(); ok {
			return m, m.copyPrompt(p)
		}
	case "r":
		m.loading = true
		return m, loadPrompts(m.persister)
	}
	return m, nil
}

func (m *GridModel) handleFormKey(msg tea.KeyMsg) (*GridModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// The in-flight guard holds: a submission's target state must not
		// be lost under it.
		if !m.form.Submitting() {
			m.form.Reset()
		}
		return m, nil
	case "ctrl+s":
		if m.form.Submitting() {
			return m, nil
		}
		draft := m.form.Draft()
		if err := draft.Validate(); err != nil {
			m.form.SetError(err.Error())
			return m, nil
		}
		m.form.BeginSubmit()
		return m, savePrompt(m.persister, m.form.EditingID(), draft)
	}
	return m, m.form.UpdateFields(msg)
}

func (m *GridModel) handleConfirmKey(msg tea.KeyMsg) (*GridModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		target, ok := m.deleteConfirm.Begin()
		if !ok {
			return m, nil
		}
		return m, deletePrompt(m.persister, target.ID)
	case "n", "N", "esc":
		m.deleteConfirm.Cancel()
	}
	return m, nil
}

func (m *GridModel) handleSaved(msg promptSavedMsg) (*GridModel, tea.Cmd) {
	if msg.created {
		m.prompts = append([]models.Prompt{msg.prompt}, m.prompts...)
		m.cursor = 0
	} else {
		for i := range m.prompts {
			if m.prompts[i].ID == msg.prompt.ID {
				m.prompts[i] = msg.prompt
				break
			}
		}
	}
	m.form.Reset()
	return m, nil
}

func (m *GridModel) handleDeleted(msg promptDeletedMsg) (*GridModel, tea.Cmd) {
	for i := range m.prompts {
		if m.prompts[i].ID == msg.id {
			m.prompts = append(m.prompts[:i], m.prompts[i+1:]...)
			break
		}
	}
	m.clampCursor()
	if m.copiedID == msg.id {
		// The record is gone; cancel any pending marker clear.
		m.copiedID = 0
		m.copiedGen++
	}
	m.deleteConfirm.Finish()
	return m, notify(NotifyInfo, "Deleted", "")
}

func (m *GridModel) handleCopyResult(msg copyResultMsg) (*GridModel, tea.Cmd) {
	if msg.err != nil {
		m.logger.Error("failed to copy prompt",
			zap.Int64("id", msg.id), zap.Error(msg.err))
		return m, notify(NotifyError, "Copy failed", errorMessage(msg.err))
	}

	// A second copy inside the window moves the marker; bumping the
	// generation strands the previous timer.
	m.copiedID = msg.id
	m.copiedGen++
	gen := m.copiedGen
	clearCmd := tea.Tick(copiedDuration, func(time.Time) tea.Msg {
		return clearCopiedMsg{gen: gen}
	})
	return m, tea.Batch(notify(NotifyInfo, "Copied to clipboard", ""), clearCmd)
}

func (m *GridModel) current() (models.Prompt, bool) {
	if m.cursor < 0 || m.cursor >= len(m.prompts) {
		return models.Prompt{}, false
	}
	return m.prompts[m.cursor], true
}

func (m *GridModel) moveCursor(delta int) {
	next := m.cursor + delta
	if next >= 0 && next < len(m.prompts) {
		m.cursor = next
	}
}

func (m *GridModel) clampCursor() {
	if m.cursor >= len(m.prompts) {
		m.cursor = len(m.prompts) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
