package types

// Movement actions
type MoveUpAction struct{}

func (a MoveUpAction) Type() string { return "move_up" }

type MoveDownAction struct{}

func (a MoveDownAction) Type() string { return "move_down" }

// Directory actions
type DescendAction struct{}

func (a DescendAction) Type() string { return "descend" }

type AscendAction struct{}

func (a AscendAction) Type() string { return "ascend" }

// Confirm actions
type ConfirmSelectedAction struct{}

func (a ConfirmSelectedAction) Type() string { return "confirm_selected" }

type ConfirmCurrentAction struct{}

func (a ConfirmCurrentAction) Type() string { return "confirm_current" }

// Query actions
type TypeRuneAction struct {
	Rune rune
}

func (a TypeRuneAction) Type() string { return "type_rune" }

type ClearQueryAction struct{}

func (a ClearQueryAction) Type() string { return "clear_query" }

type CancelAction struct{}

func (a CancelAction) Type() string { return "cancel" }
