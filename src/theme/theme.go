// Package theme provides color definitions and lipgloss styles for
// the dashboard: the base palette, per-team accent colors, and the
// heat ramp.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme is a complete color set for the terminal UI.
type Theme struct {
	Name   string
	IsDark bool
	Colors Colors
}

// Colors contains all palette values for a theme.
type Colors struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
	Border  lipgloss.Color
}

// Dark is the default theme (Dracula palette).
var Dark = Theme{
	Name:   "dark",
	IsDark: true,
	Colors: Colors{
		Text:    lipgloss.Color("#f8f8f2"),
		Muted:   lipgloss.Color("#6272a4"),
		Accent:  lipgloss.Color("#bd93f9"),
		Success: lipgloss.Color("#50fa7b"),
		Warning: lipgloss.Color("#ffb86c"),
		Error:   lipgloss.Color("#ff5555"),
		Info:    lipgloss.Color("#8be9fd"),
		Border:  lipgloss.Color("#44475a"),
	},
}

// Light is the light theme for bright terminals.
var Light = Theme{
	Name:   "light",
	IsDark: false,
	Colors: Colors{
		Text:    lipgloss.Color("#282a36"),
		Muted:   lipgloss.Color("#6272a4"),
		Accent:  lipgloss.Color("#7c3aed"),
		Success: lipgloss.Color("#059669"),
		Warning: lipgloss.Color("#d97706"),
		Error:   lipgloss.Color("#dc2626"),
		Info:    lipgloss.Color("#0284c7"),
		Border:  lipgloss.Color("#d1d5db"),
	},
}

// ByName returns the theme for a config value, defaulting to Dark.
func ByName(name string) Theme {
	if name == "light" {
		return Light
	}
	return Dark
}
