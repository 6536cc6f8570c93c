// Package layout turns a game list into marker labels placed on the
// map canvas: formatting, coordinate scaling, and collision-resolving
// row assignment.
package layout

import (
	"fmt"
	"strings"

	"github.com/courtside/courtside/src/model"
)

// Rendering glyphs shared with the row renderer. The formatter emits
// LivePrefix; the renderer swaps it for the blinking dot.
const (
	LivePrefix   = "··"
	HeatSuffix   = "*"
	SelectOpen   = "["
	SelectClose  = "]"
	FilterOpen   = "»"
	FilterClose  = "«"
	ScheduledSep = "-"
)

// Flags is a game's display state for one render pass.
type Flags struct {
	Live        bool
	Selected    bool
	Highlighted bool
	Crunch      bool
	Heat        model.HeatLevel
}

// FlagsFor derives display flags from a game, the current selection,
// the active filter, and the heat map.
func FlagsFor(g model.Game, index, selected int, filter string, heat model.HeatMap) Flags {
	f := Flags{
		Live:     g.IsLive(),
		Selected: index == selected,
		Crunch:   g.IsCrunchTime(),
		Heat:     model.HeatCold,
	}
	if filter != "" && (g.AwayTeam.Matches(filter) || g.HomeTeam.Matches(filter)) {
		f.Highlighted = true
	}
	if h, ok := heat[g.ID]; ok && h.Level != "" {
		f.Heat = h.Level
	}
	return f
}

// SegmentKind identifies a marker sub-span for independent coloring.
type SegmentKind int

const (
	SegDecor  SegmentKind = iota // brackets and guillemets
	SegLive                      // the double-dot live prefix
	SegAway                      // away team code
	SegMiddle                    // score or scheduled separator
	SegHome                      // home team code
	SegHeat                      // heat suffix glyph
)

// Segment is one independently colorable piece of a marker.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Segments decomposes a game's marker into its colorable pieces. The
// concatenation of all segment texts equals FormatMarker's output.
func Segments(g model.Game, f Flags) []Segment {
	var segs []Segment

	switch {
	case f.Selected:
		segs = append(segs, Segment{SegDecor, SelectOpen})
	case f.Highlighted:
		segs = append(segs, Segment{SegDecor, FilterOpen})
	}

	if f.Live {
		segs = append(segs, Segment{SegLive, LivePrefix})
	}

	segs = append(segs, Segment{SegAway, g.AwayTeam.Tricode})
	if g.IsScheduled() {
		segs = append(segs, Segment{SegMiddle, ScheduledSep})
	} else {
		segs = append(segs, Segment{SegMiddle, fmt.Sprintf(" %d-%d ", g.AwayTeam.Score, g.HomeTeam.Score)})
	}
	segs = append(segs, Segment{SegHome, g.HomeTeam.Tricode})

	switch {
	case f.Selected:
		segs = append(segs, Segment{SegDecor, SelectClose})
	case f.Highlighted:
		segs = append(segs, Segment{SegDecor, FilterClose})
	}

	if f.Heat.AtLeast(model.HeatHot) {
		segs = append(segs, Segment{SegHeat, HeatSuffix})
	}
	return segs
}

// FormatMarker renders a game's short label. Scheduled games show
// "AWAY-HOME"; live and final games show "AWAY score-score HOME".
// Selection wraps the label in brackets, a filter match in guillemets;
// live games get the double-dot prefix and hot games the heat suffix.
// Pure function of its inputs.
func FormatMarker(g model.Game, f Flags) string {
	var b strings.Builder
	for _, seg := range Segments(g, f) {
		b.WriteString(seg.Text)
	}
	return b.String()
}
