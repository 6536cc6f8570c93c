// Package terminal detects terminal capabilities before the dashboard
// takes over the screen.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// SizeMode classifies the terminal width against the dashboard layout.
// The map canvas is 100 columns wide, so anything narrower than that
// plus its frame drops to the compact scoreboard rendering.
type SizeMode int

const (
	// ModeNarrow is below the map width; only the list view fits.
	ModeNarrow SizeMode = iota
	// ModeStandard fits the full map page.
	ModeStandard
	// ModeWide fits the map plus the standings sidebar.
	ModeWide
)

const (
	fallbackCols = 80
	fallbackRows = 24

	standardCols = 104
	wideCols     = 148
)

// String returns a human-readable mode name for logs and doctor output.
func (m SizeMode) String() string {
	switch m {
	case ModeNarrow:
		return "narrow"
	case ModeStandard:
		return "standard"
	case ModeWide:
		return "wide"
	default:
		return "unknown"
	}
}

// Size holds the detected terminal dimensions and layout mode.
type Size struct {
	Cols int
	Rows int
	Mode SizeMode
}

// GetSize returns the current terminal size, falling back to 80x24
// when detection fails (pipes, CI, dumb terminals).
func GetSize() Size {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 {
		cols = fallbackCols
	}
	if rows <= 0 {
		rows = fallbackRows
	}
	return Size{Cols: cols, Rows: rows, Mode: ModeFor(cols)}
}

// ModeFor maps a column count to a layout mode. The TUI calls this on
// every resize with the width bubbletea reports.
func ModeFor(cols int) SizeMode {
	switch {
	case cols >= wideCols:
		return ModeWide
	case cols >= standardCols:
		return ModeStandard
	default:
		return ModeNarrow
	}
}

// IsInteractive reports whether stdin and stdout are both attached to a
// terminal. The dashboard refuses to start when either is redirected.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Fits reports whether the detected size can hold a region of the
// given dimensions.
func (s Size) Fits(cols, rows int) bool {
	return s.Cols >= cols && s.Rows >= rows
}

// ShowSidebar reports whether the standings sidebar fits next to the map.
func (m SizeMode) ShowSidebar() bool {
	return m >= ModeWide
}
