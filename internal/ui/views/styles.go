package views

import (
	"github.com/charmbracelet/lipgloss"

	"dirjump/internal/config"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Path        lipgloss.Style
	Prompt      lipgloss.Style
	Query       lipgloss.Style
	Dir         lipgloss.Style
	File        lipgloss.Style
	HighlightBg lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates styles from the configured colors
func NewStyles(ui config.UISettings) *Styles {
	return &Styles{
		Path:        lipgloss.NewStyle().Foreground(lipgloss.Color(ui.PathColor)),
		Prompt:      lipgloss.NewStyle(),
		Query:       lipgloss.NewStyle().Foreground(lipgloss.Color(ui.QueryColor)),
		Dir:         lipgloss.NewStyle().Foreground(lipgloss.Color(ui.DirColor)),
		File:        lipgloss.NewStyle(),
		HighlightBg: lipgloss.NewStyle().Background(lipgloss.Color(ui.HighlightColor)),
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
