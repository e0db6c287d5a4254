package logic

import (
	"io"

	"github.com/sirupsen/logrus"

	"dirjump/internal/discovery"
	"dirjump/internal/domain"
	"dirjump/internal/ui/input/types"
	"dirjump/internal/ui/services/navigation"
	"dirjump/internal/ui/state"
)

// Effect tells the event loop what to do after a transition
type Effect interface {
	effect()
}

// EffectNone keeps the loop running
type EffectNone struct{}

// EffectEmit writes Path to the diagnostic stream, then terminates
type EffectEmit struct {
	Path string
}

// EffectCancel terminates without emitting
type EffectCancel struct{}

func (EffectNone) effect()   {}
func (EffectEmit) effect()   {}
func (EffectCancel) effect() {}

// Selector finds the entry a query should jump to
type Selector interface {
	Select(query string, entries []domain.Entry) (int, bool)
}

// Machine computes navigator transitions. It never touches the terminal;
// listing through Lister is its only side effect.
type Machine struct {
	Lister   discovery.Lister
	Selector Selector
	Logger   logrus.FieldLogger
}

// NewMachine creates a machine; a nil logger discards output
func NewMachine(lister discovery.Lister, selector Selector, logger logrus.FieldLogger) *Machine {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Machine{Lister: lister, Selector: selector, Logger: logger}
}

// Start lists path and returns the initial state
func (m *Machine) Start(path string) (state.State, error) {
	entries, err := m.list(path)
	if err != nil {
		return state.State{}, err
	}
	return m.enter(path, entries), nil
}

// Apply returns the state after action along with the effect to perform
func (m *Machine) Apply(s state.State, action types.Action) (state.State, Effect) {
	switch a := action.(type) {
	case types.MoveUpAction:
		movement := s.Effective() - 1
		if movement < 0 {
			movement = 0
		}
		s.Cursor = state.Browsing{Movement: movement}

	case types.MoveDownAction:
		s.Cursor = state.Browsing{Movement: navigation.Clamp(s.Effective()+1, len(s.Entries))}

	case types.DescendAction:
		return m.descend(s), EffectNone{}

	case types.AscendAction:
		return m.ascend(s), EffectNone{}

	case types.ConfirmSelectedAction:
		entry, ok := s.Selected()
		if !ok || !entry.IsDir {
			return s, EffectNone{}
		}
		return s, EffectEmit{Path: m.canonical(entry.Path)}

	case types.ConfirmCurrentAction:
		return s, EffectEmit{Path: m.canonical(s.Path)}

	case types.TypeRuneAction:
		query := s.Query() + string(a.Rune)
		match := state.QueryCursor(s.Cursor)
		if i, ok := m.Selector.Select(query, s.Entries); ok {
			match = i
		}
		s.Cursor = state.Filtering{Movement: state.Movement(s.Cursor), Match: match, Text: query}

	case types.ClearQueryAction:
		s.Cursor = state.Browsing{Movement: state.Movement(s.Cursor)}

	case types.CancelAction:
		return s, EffectCancel{}
	}

	return s, EffectNone{}
}

func (m *Machine) descend(s state.State) state.State {
	entry, ok := s.Selected()
	if !ok || !entry.IsDir {
		return s
	}

	entries, err := m.list(entry.Path)
	if err != nil {
		return s
	}
	return m.enter(entry.Path, entries)
}

func (m *Machine) ascend(s state.State) state.State {
	parent := m.Lister.Parent(s.Path)

	entries, err := m.list(parent)
	if err != nil {
		return s
	}

	movement := domain.IndexOf(entries, s.Path)
	if movement < 0 {
		movement = 0
	}
	next := m.enter(parent, entries)
	next.Cursor = state.Browsing{Movement: movement}
	return next
}

// enter builds the browsing state for a freshly listed directory
func (m *Machine) enter(path string, entries []domain.Entry) state.State {
	next := state.New(path, entries)
	next.Display = m.canonical(path)
	return next
}

func (m *Machine) list(path string) ([]domain.Entry, error) {
	entries, err := m.Lister.List(path)
	if err != nil {
		m.Logger.WithError(err).WithField("path", path).Warn("Directory listing failed")
		return nil, err
	}
	m.Logger.WithFields(logrus.Fields{"path": path, "entries": len(entries)}).Debug("Listed directory")
	return entries, nil
}

// canonical resolves symlinks in an emitted path, keeping it as-is when
// that fails
func (m *Machine) canonical(path string) string {
	resolved, err := m.Lister.Canonicalize(path)
	if err != nil {
		m.Logger.WithError(err).WithField("path", path).Debug("Canonicalize failed")
		return path
	}
	return resolved
}
