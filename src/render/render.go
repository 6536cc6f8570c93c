// Package render styles placed map lines for the terminal. The layout
// package decides where markers sit; this package decides what each
// cell looks like: team colors on the tricodes, the heat ramp on busy
// games, the blinking live dot, and the crunch-time flash.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/courtside/courtside/src/layout"
	"github.com/courtside/courtside/src/model"
	"github.com/courtside/courtside/src/theme"
)

// Blink glyphs swapped in for the live prefix on alternate phases.
const (
	liveOn  = "● "
	liveOff = "· "
)

// Options carries the per-pass render state.
type Options struct {
	Theme   theme.Theme
	BlinkOn bool
}

// Lines styles every row of a placed map. The input lines come from
// layout.PlaceMarkers; positions is the marker map it returned.
func Lines(lines []string, positions map[int]layout.Position, games []model.Game, opts Options) []string {
	out := make([]string, len(lines))
	for row, line := range lines {
		out[row] = Row(line, row, positions, games, opts)
	}
	return out
}

// Row styles one placed line. Marker cells are re-stamped from their
// segments so the live prefix can blink; everything else keeps the
// background style. Each sub-span picks its color by fixed priority:
// filter highlight, then team color, then heat, then crunch, then
// selection, then the default text color.
func Row(line string, row int, positions map[int]layout.Position, games []model.Game, opts Options) string {
	runes := []rune(line)
	keys := make([]string, len(runes))
	styles := map[string]lipgloss.Style{
		"bg": lipgloss.NewStyle().Foreground(opts.Theme.Colors.Muted),
	}
	for i := range keys {
		keys[i] = "bg"
	}

	for _, m := range markersOn(row, positions, games) {
		at := m.pos.Col
		for _, seg := range layout.Segments(m.game, m.pos.Flags) {
			text := seg.Text
			if seg.Kind == layout.SegLive {
				text = liveGlyph(opts.BlinkOn)
			}
			key, st := segmentStyle(seg, m.game, m.pos.Flags, opts)
			styles[key] = st
			for _, r := range text {
				if at >= len(runes) {
					break
				}
				if at >= 0 {
					runes[at] = r
					keys[at] = key
				}
				at++
			}
		}
	}

	var b strings.Builder
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && keys[i] == keys[start] {
			continue
		}
		b.WriteString(styles[keys[start]].Render(string(runes[start:i])))
		start = i
	}
	return b.String()
}

type placedMarker struct {
	game model.Game
	pos  layout.Position
}

// markersOn collects the markers assigned to a row in splice order, so
// overlapping labels overwrite the same way the layout pass did.
func markersOn(row int, positions map[int]layout.Position, games []model.Game) []placedMarker {
	var out []placedMarker
	for i, g := range games {
		p, ok := positions[i]
		if !ok || p.Row != row {
			continue
		}
		out = append(out, placedMarker{game: g, pos: p})
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].pos.Col < out[j-1].pos.Col; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func liveGlyph(on bool) string {
	if on {
		return liveOn
	}
	return liveOff
}

// segmentStyle resolves one sub-span's style and a stable key for run
// grouping. Crunch-time markers invert on the blink-on phase, which
// reads as a flash across the whole label.
func segmentStyle(seg layout.Segment, g model.Game, f layout.Flags, opts Options) (string, lipgloss.Style) {
	c := opts.Theme.Colors
	var key string
	var st lipgloss.Style

	switch {
	case seg.Kind == layout.SegLive:
		if opts.BlinkOn {
			key, st = "live:on", lipgloss.NewStyle().Foreground(c.Error).Bold(true)
		} else {
			key, st = "live:off", lipgloss.NewStyle().Foreground(c.Muted)
		}
	case seg.Kind == layout.SegHeat:
		key = "heat:" + string(f.Heat)
		st = lipgloss.NewStyle().Foreground(theme.HeatColor(string(f.Heat), opts.Theme)).Bold(true)
	case f.Highlighted && !f.Selected:
		key, st = "hl", lipgloss.NewStyle().Foreground(c.Info).Bold(true)
	case seg.Kind == layout.SegAway:
		key = "team:" + g.AwayTeam.Tricode
		st = lipgloss.NewStyle().Foreground(theme.TeamColor(g.AwayTeam.Tricode, opts.Theme)).Bold(true)
	case seg.Kind == layout.SegHome:
		key = "team:" + g.HomeTeam.Tricode
		st = lipgloss.NewStyle().Foreground(theme.TeamColor(g.HomeTeam.Tricode, opts.Theme)).Bold(true)
	case f.Heat.AtLeast(model.HeatWarm) && seg.Kind == layout.SegMiddle:
		key = "heat:" + string(f.Heat)
		st = lipgloss.NewStyle().Foreground(theme.HeatColor(string(f.Heat), opts.Theme))
	case f.Crunch:
		key, st = "crunch", lipgloss.NewStyle().Foreground(c.Error).Bold(true)
	case f.Selected:
		key, st = "sel", lipgloss.NewStyle().Foreground(c.Accent).Bold(true)
	default:
		key, st = "text", lipgloss.NewStyle().Foreground(c.Text)
	}

	if f.Crunch && opts.BlinkOn {
		key += "|flash"
		st = st.Reverse(true)
	}
	return key, st
}
