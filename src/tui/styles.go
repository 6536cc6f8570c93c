package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/courtside/courtside/src/theme"
)

// styles holds the chrome styles built once from the active theme. Map
// marker styling lives in src/render; these cover everything around
// the map.
type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	connected lipgloss.Style
	offline   lipgloss.Style
	stale     lipgloss.Style
	status    lipgloss.Style
	accent    lipgloss.Style
	muted     lipgloss.Style
	text      lipgloss.Style
	err       lipgloss.Style
	help      lipgloss.Style
	filter    lipgloss.Style
	panel     lipgloss.Style
	panelHead lipgloss.Style
	colHead   lipgloss.Style
	flavor    lipgloss.Style
	prob      lipgloss.Style
	volume    lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	c := t.Colors
	return styles{
		title:     lipgloss.NewStyle().Foreground(c.Accent).Bold(true),
		header:    lipgloss.NewStyle().Foreground(c.Text),
		connected: lipgloss.NewStyle().Foreground(c.Success).Bold(true),
		offline:   lipgloss.NewStyle().Foreground(c.Error).Bold(true),
		stale:     lipgloss.NewStyle().Foreground(c.Warning),
		status:    lipgloss.NewStyle().Foreground(c.Text),
		accent:    lipgloss.NewStyle().Foreground(c.Accent),
		muted:     lipgloss.NewStyle().Foreground(c.Muted),
		text:      lipgloss.NewStyle().Foreground(c.Text),
		err:       lipgloss.NewStyle().Foreground(c.Error),
		help:      lipgloss.NewStyle().Foreground(c.Muted),
		filter:    lipgloss.NewStyle().Foreground(c.Info).Bold(true),
		panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(c.Border).
			Padding(0, 1),
		panelHead: lipgloss.NewStyle().Foreground(c.Accent).Bold(true),
		colHead:   lipgloss.NewStyle().Foreground(c.Muted).Bold(true),
		flavor:    lipgloss.NewStyle().Foreground(c.Warning).Italic(true),
		prob:      lipgloss.NewStyle().Foreground(c.Info),
		volume:    lipgloss.NewStyle().Foreground(c.Muted),
	}
}
