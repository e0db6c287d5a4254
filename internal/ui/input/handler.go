package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dirjump/internal/config"
	"dirjump/internal/ui/input/types"
)

// KeyMap holds the bindings for every picker action
type KeyMap struct {
	Up              key.Binding
	Down            key.Binding
	Descend         key.Binding
	Ascend          key.Binding
	ConfirmSelected key.Binding
	ConfirmCurrent  key.Binding
	ClearQuery      key.Binding
	Cancel          key.Binding
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("alt+k", "up"),
			key.WithHelp("alt+k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("alt+j", "down"),
			key.WithHelp("alt+j/↓", "down"),
		),
		Descend: key.NewBinding(
			key.WithKeys("alt+l", "right"),
			key.WithHelp("alt+l/→", "enter dir"),
		),
		Ascend: key.NewBinding(
			key.WithKeys("alt+h", "left"),
			key.WithHelp("alt+h/←", "parent"),
		),
		ConfirmSelected: key.NewBinding(
			key.WithKeys("alt+enter"),
			key.WithHelp("alt+enter", "pick selected"),
		),
		ConfirmCurrent: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "pick current"),
		),
		ClearQuery: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "clear"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// NewKeyMap applies config overrides on top of the defaults
func NewKeyMap(keys config.Keys) KeyMap {
	km := DefaultKeyMap()
	override(&km.Up, keys.Up)
	override(&km.Down, keys.Down)
	override(&km.Descend, keys.Descend)
	override(&km.Ascend, keys.Ascend)
	override(&km.ConfirmSelected, keys.ConfirmSelected)
	override(&km.ConfirmCurrent, keys.ConfirmCurrent)
	override(&km.ClearQuery, keys.ClearQuery)
	override(&km.Cancel, keys.Cancel)
	return km
}

func override(b *key.Binding, keys []string) {
	if len(keys) == 0 {
		return
	}
	desc := b.Help().Desc
	*b = key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], desc))
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Descend, k.Ascend, k.ConfirmSelected, k.ConfirmCurrent, k.Cancel}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Descend, k.Ascend},
		{k.ConfirmSelected, k.ConfirmCurrent, k.ClearQuery, k.Cancel},
	}
}

// Handler translates key presses into picker actions
type Handler struct {
	keys KeyMap
}

func New(keys KeyMap) *Handler {
	return &Handler{keys: keys}
}

// Keys returns the bindings in use
func (h *Handler) Keys() KeyMap {
	return h.keys
}

// HandleKey maps one key event to zero or more actions. Bindings win over
// text input; pasted text yields one TypeRune per rune.
func (h *Handler) HandleKey(msg tea.KeyMsg) []types.Action {
	switch {
	case key.Matches(msg, h.keys.Cancel):
		return []types.Action{types.CancelAction{}}
	case key.Matches(msg, h.keys.Up):
		return []types.Action{types.MoveUpAction{}}
	case key.Matches(msg, h.keys.Down):
		return []types.Action{types.MoveDownAction{}}
	case key.Matches(msg, h.keys.Descend):
		return []types.Action{types.DescendAction{}}
	case key.Matches(msg, h.keys.Ascend):
		return []types.Action{types.AscendAction{}}
	case key.Matches(msg, h.keys.ConfirmSelected):
		return []types.Action{types.ConfirmSelectedAction{}}
	case key.Matches(msg, h.keys.ConfirmCurrent):
		return []types.Action{types.ConfirmCurrentAction{}}
	case key.Matches(msg, h.keys.ClearQuery):
		return []types.Action{types.ClearQueryAction{}}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []types.Action{types.TypeRuneAction{Rune: ' '}}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		actions := make([]types.Action, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			actions = append(actions, types.TypeRuneAction{Rune: r})
		}
		return actions
	}
	return nil
}
