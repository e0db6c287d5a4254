package state

import (
	"dirjump/internal/domain"
	"dirjump/internal/ui/input/types"
)

// State is the whole navigator state. Transitions replace it wholesale;
// Path and Entries always change together.
type State struct {
	Path    string         // directory being shown, as it was listed
	Display string         // Path with symlinks resolved, for the header
	Entries []domain.Entry // children of Path, directories first
	Cursor  Cursor
}

// New creates a browsing state at the top of entries
func New(path string, entries []domain.Entry) State {
	return State{Path: path, Display: path, Entries: entries, Cursor: Browsing{}}
}

// Header returns the path to show above the list
func (s State) Header() string {
	if s.Display != "" {
		return s.Display
	}
	return s.Path
}

// Cursor is either Browsing or Filtering
type Cursor interface {
	// Effective is the highlighted entry index
	Effective() int
	// Query is the typed text, empty while browsing
	Query() string
	Mode() types.Mode

	cursor()
}

// Browsing follows the movement keys. The query is empty.
type Browsing struct {
	Movement int
}

func (c Browsing) Effective() int   { return c.Movement }
func (c Browsing) Query() string    { return "" }
func (c Browsing) Mode() types.Mode { return types.ModeBrowsing }
func (Browsing) cursor()            {}

// Filtering follows the best match for a non-empty query. Movement is kept
// so clearing the query goes back to where the user was.
type Filtering struct {
	Movement int
	Match    int
	Text     string
}

func (c Filtering) Effective() int   { return c.Match }
func (c Filtering) Query() string    { return c.Text }
func (c Filtering) Mode() types.Mode { return types.ModeFiltering }
func (Filtering) cursor()            {}

// Movement returns the movement-derived cursor of either variant
func Movement(c Cursor) int {
	switch c := c.(type) {
	case Filtering:
		return c.Movement
	case Browsing:
		return c.Movement
	}
	return 0
}

// QueryCursor returns the last match index, 0 while browsing
func QueryCursor(c Cursor) int {
	if f, ok := c.(Filtering); ok {
		return f.Match
	}
	return 0
}

// Selected returns the entry under the effective cursor
func (s State) Selected() (domain.Entry, bool) {
	i := s.Effective()
	if i < 0 || i >= len(s.Entries) {
		return domain.Entry{}, false
	}
	return s.Entries[i], true
}

// Effective is the highlighted entry index
func (s State) Effective() int {
	if s.Cursor == nil {
		return 0
	}
	return s.Cursor.Effective()
}

// Query is the typed text
func (s State) Query() string {
	if s.Cursor == nil {
		return ""
	}
	return s.Cursor.Query()
}
