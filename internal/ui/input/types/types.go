package types

// Mode represents an input mode
type Mode int

const (
	ModeBrowsing Mode = iota
	ModeFiltering
)

func (m Mode) String() string {
	switch m {
	case ModeFiltering:
		return "filtering"
	default:
		return "browsing"
	}
}

// Action represents a command the navigator should execute
type Action interface {
	Type() string
}
