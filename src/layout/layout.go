package layout

import (
	"sort"

	"github.com/courtside/courtside/src/geo"
	"github.com/courtside/courtside/src/model"
)

// Markers closer than this many columns on one row are considered
// colliding, so neighbors never visually touch.
const minGap = 3

// Position is a game's resolved cell for one render pass.
type Position struct {
	Row    int
	Col    int
	Marker string
	Flags  Flags
}

// span is a half-open occupied column range [start, end).
type span struct {
	start int
	end   int
}

func (s span) overlaps(o span) bool {
	return s.start < o.end && o.start < s.end
}

// PlaceMarkers splices each game's marker into the map lines and
// returns the mutated lines plus the game-index position map. Markers
// are anchored at the home team's projected cell; column collisions
// push a marker down row by row (wrapping once around the grid) until
// a free row is found, and overlap is accepted if none is. The result
// is deterministic for identical inputs.
func PlaceMarkers(lines []string, games []model.Game, selected int, filter string, heat model.HeatMap) ([]string, map[int]Position) {
	height := len(lines)
	positions := make(map[int]Position, len(games))
	if height == 0 || len(games) == 0 {
		return lines, positions
	}
	width := len([]rune(lines[0]))

	type placement struct {
		index  int
		row    int
		col    int
		marker string
		flags  Flags
	}

	order := make([]placement, 0, len(games))
	for i, g := range games {
		flags := FlagsFor(g, i, selected, filter, heat)
		marker := FormatMarker(g, flags)

		pt, ok := geo.Position(g.HomeTeam.Tricode)
		if !ok {
			// Unknown venue still gets a deterministic cell.
			pt = geo.Point{X: 0.5, Y: 0.5}
		}

		row := int(pt.Y*float64(height-1) + 0.5)
		col := int(pt.X*float64(width-1) + 0.5)

		// Shift left just enough to keep the marker on-grid.
		if max := width - len([]rune(marker)); col > max {
			col = max
		}
		if col < 0 {
			col = 0
		}

		order = append(order, placement{index: i, row: row, col: col, marker: marker, flags: flags})
	}

	// West-to-east placement: leftmost games claim their preferred
	// row first. Original list order breaks column ties.
	sort.SliceStable(order, func(a, b int) bool {
		return order[a].col < order[b].col
	})

	out := make([]string, height)
	copy(out, lines)
	occupied := make(map[int][]span, height)

	for _, p := range order {
		rng := span{start: p.col - minGap, end: p.col + len([]rune(p.marker)) + minGap}

		row := p.row
		for tries := 0; tries < height; tries++ {
			candidate := (p.row + tries) % height
			if !collides(occupied[candidate], rng) {
				row = candidate
				break
			}
			// A full wrap with no free row keeps the original row
			// and accepts the overlap.
		}

		occupied[row] = append(occupied[row], rng)
		out[row] = splice(out[row], p.col, p.marker)
		positions[p.index] = Position{Row: row, Col: p.col, Marker: p.marker, Flags: p.flags}
	}

	return out, positions
}

func collides(taken []span, rng span) bool {
	for _, t := range taken {
		if t.overlaps(rng) {
			return true
		}
	}
	return false
}

// splice overwrites line content with text starting at col, rune-wise,
// truncating text at the line edge.
func splice(line string, col int, text string) string {
	runes := []rune(line)
	for i, r := range []rune(text) {
		at := col + i
		if at < 0 {
			continue
		}
		if at >= len(runes) {
			break
		}
		runes[at] = r
	}
	return string(runes)
}
