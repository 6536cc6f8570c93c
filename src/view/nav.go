package view

import (
	"math"

	"github.com/courtside/courtside/src/geo"
	"github.com/courtside/courtside/src/model"
)

// Direction is a spatial navigation direction on the map.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Tuning for spatial selection. Displacement along the pressed axis
// must clear the dead zone before a game counts as "in that
// direction"; cross-axis drift costs a fraction of on-axis distance.
const (
	deadZone        = 0.02
	secondaryWeight = 0.3
)

// vector returns the unit axis for a direction in map coordinates,
// where x grows eastward and y grows southward.
func (d Direction) vector() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Move shifts the selection to the nearest game in the pressed
// direction. Nearest means the lowest primary-plus-weighted-secondary
// displacement score among games past the dead zone. With nothing in
// that direction the selection wraps to the game furthest the other
// way, so repeated presses cycle across the map. A press with no
// selection yet just establishes one.
func (s *State) Move(d Direction) {
	if len(s.Games) == 0 {
		return
	}
	if s.Selected < 0 || s.Selected >= len(s.Games) {
		s.Selected = 0
		return
	}

	origin := gamePoint(s.Games[s.Selected])
	dx, dy := d.vector()

	best := -1
	bestScore := math.MaxFloat64
	for i, g := range s.Games {
		if i == s.Selected {
			continue
		}
		pt := gamePoint(g)
		primary := (pt.X-origin.X)*dx + (pt.Y-origin.Y)*dy
		if primary <= deadZone {
			continue
		}
		secondary := math.Abs((pt.X-origin.X)*dy) + math.Abs((pt.Y-origin.Y)*dx)
		if score := primary + secondaryWeight*secondary; score < bestScore {
			best, bestScore = i, score
		}
	}
	if best >= 0 {
		s.Selected = best
		return
	}

	// Nothing past the dead zone: wrap to the far edge.
	wrap := s.Selected
	wrapProj := math.MaxFloat64
	for i, g := range s.Games {
		if i == s.Selected {
			continue
		}
		pt := gamePoint(g)
		if proj := pt.X*dx + pt.Y*dy; proj < wrapProj {
			wrap, wrapProj = i, proj
		}
	}
	s.Selected = wrap
}

// gamePoint anchors a game at its home venue, with the same
// center-of-map fallback the layout engine uses for unknown teams.
func gamePoint(g model.Game) geo.Point {
	if pt, ok := geo.Position(g.HomeTeam.Tricode); ok {
		return pt
	}
	return geo.Point{X: 0.5, Y: 0.5}
}
