// Package mapgrid provides the background map canvas: a fixed-size
// ASCII outline of the United States embedded in the binary. The
// asset carries no labels; games are drawn over it by the layout
// engine.
package mapgrid

import (
	_ "embed"
	"strings"
)

// Canvas dimensions in characters. The asset is generated against the
// same projection bounds the geo package uses, so normalized team
// positions land where the outline suggests.
const (
	Width  = 100
	Height = 28
)

//go:embed usmap.txt
var usMap string

var baseLines = func() []string {
	lines := strings.Split(strings.TrimRight(usMap, "\n"), "\n")
	if len(lines) > Height {
		lines = lines[:Height]
	}
	for len(lines) < Height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		if n := len([]rune(line)); n < Width {
			lines[i] = line + strings.Repeat(" ", Width-n)
		} else if n > Width {
			lines[i] = string([]rune(line)[:Width])
		}
	}
	return lines
}()

// Lines returns a fresh copy of the map rows, each exactly Width
// runes. Callers may mutate the copy freely.
func Lines() []string {
	out := make([]string, Height)
	copy(out, baseLines)
	return out
}
