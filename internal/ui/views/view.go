package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"

	"dirjump/internal/config"
	"dirjump/internal/domain"
	"dirjump/internal/ui/services/navigation"
)

const rowIndent = "  "

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width     int
	Path      string
	Query     string
	Entries   []domain.Entry
	Effective int
	ShowHelp  bool
	HelpModel help.Model
	Keys      help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles   *Styles
	capacity int
}

// NewRenderer creates a new renderer
func NewRenderer(ui config.UISettings) *Renderer {
	capacity := ui.VisibleRows
	if capacity <= 0 {
		capacity = navigation.DefaultCapacity
	}
	return &Renderer{
		styles:   NewStyles(ui),
		capacity: capacity,
	}
}

// Render produces the complete frame: path, prompt, the visible window of
// entries and the optional help line
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(" " + r.styles.Path.Render(state.Path))
	content.WriteString("\n")
	content.WriteString(r.styles.Prompt.Render("> ") + r.styles.Query.Render(state.Query))
	content.WriteString("\n")

	window := navigation.Compute(len(state.Entries), state.Effective, r.capacity)
	for i := window.Skip; i < window.End(); i++ {
		content.WriteString(r.renderEntry(state.Entries[i], i == state.Effective))
		content.WriteString("\n")
	}

	if state.ShowHelp && state.Keys != nil {
		state.HelpModel.Width = state.Width
		content.WriteString(r.styles.Help.Render(state.HelpModel.View(state.Keys)))
		content.WriteString("\n")
	}

	return content.String()
}

func (r *Renderer) renderEntry(entry domain.Entry, selected bool) string {
	style := r.styles.File
	if entry.IsDir {
		style = r.styles.Dir
	}
	if selected {
		style = style.Inherit(r.styles.HighlightBg)
	}
	return rowIndent + style.Render(entry.Name())
}
