package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"dirjump/internal/config"
	"dirjump/internal/ui/input"
	"dirjump/internal/ui/logic"
	"dirjump/internal/ui/state"
	"dirjump/internal/ui/views"
)

// Outcome is how the picker finished
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeEmitted
	OutcomeCancelled
)

// Model represents the UI state
type Model struct {
	machine *logic.Machine
	state   state.State

	renderer     *views.Renderer
	inputHandler *input.Handler
	help         help.Model
	showHelp     bool
	width        int

	emitter *Emitter
	logger  logrus.FieldLogger

	outcome Outcome
	emitted string
	err     error
}

// NewModel creates a new UI model starting from an already listed state
func NewModel(cfg *config.Config, machine *logic.Machine, initial state.State, emitter *Emitter, logger logrus.FieldLogger) *Model {
	return &Model{
		machine:      machine,
		state:        initial,
		renderer:     views.NewRenderer(cfg.UI),
		inputHandler: input.New(input.NewKeyMap(cfg.Keys)),
		help:         help.New(),
		showHelp:     cfg.UI.ShowHelp,
		emitter:      emitter,
		logger:       logger,
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		if m.outcome != OutcomeRunning {
			return m, nil
		}
		for _, action := range m.inputHandler.HandleKey(msg) {
			next, effect := m.machine.Apply(m.state, action)
			m.state = next
			m.logger.WithFields(logrus.Fields{
				"action": action.Type(),
				"mode":   next.Cursor.Mode().String(),
			}).Debug("Applied action")

			switch e := effect.(type) {
			case logic.EffectEmit:
				return m, m.emit(e.Path)
			case logic.EffectCancel:
				m.logger.Debug("Cancelled")
				m.outcome = OutcomeCancelled
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// emit writes the path before asking the program to quit, so the path is
// out even if restoring the terminal fails afterwards
func (m *Model) emit(path string) tea.Cmd {
	if err := m.emitter.Emit(path); err != nil {
		m.logger.WithError(err).Error("Failed to emit path")
		m.err = err
	} else {
		m.logger.WithField("path", path).Info("Emitted path")
	}
	m.outcome = OutcomeEmitted
	m.emitted = path
	return tea.Quit
}

// View renders the model
func (m *Model) View() string {
	if m.outcome != OutcomeRunning {
		return ""
	}
	return m.renderer.Render(views.ViewState{
		Width:     m.width,
		Path:      m.state.Header(),
		Query:     m.state.Query(),
		Entries:   m.state.Entries,
		Effective: m.state.Effective(),
		ShowHelp:  m.showHelp,
		HelpModel: m.help,
		Keys:      m.inputHandler.Keys(),
	})
}

// State returns the current navigator state
func (m *Model) State() state.State {
	return m.state
}

// Outcome reports how the picker finished
func (m *Model) Outcome() Outcome {
	return m.outcome
}

// Emitted returns the path written on success
func (m *Model) Emitted() string {
	return m.emitted
}

// Err returns the emit failure, if any
func (m *Model) Err() error {
	return m.err
}
