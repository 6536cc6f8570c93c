// Package view holds the dashboard's UI state and the actions that
// mutate it. It is pure bookkeeping: the tui package owns the event
// loop and calls in here, the layout and render packages consume the
// resulting state.
package view

import (
	"time"

	"github.com/courtside/courtside/src/model"
)

// State is everything the map and detail pages need to draw.
// It is not safe for concurrent use; the TUI update loop owns it.
type State struct {
	Date      time.Time
	Games     []model.Game
	Selected  int
	Filter    string
	Odds      model.OddsBook
	Heat      model.HeatMap
	Standings []model.Standing
	ShowOdds  bool
}

// New returns an empty state anchored on now's calendar date.
func New(now time.Time) *State {
	return &State{
		Date:     now,
		Selected: -1,
		Odds:     model.OddsBook{},
		Heat:     model.HeatMap{},
	}
}

// DateString renders the viewed date the way the service keys it.
func (s *State) DateString() string {
	return s.Date.Format("2006-01-02")
}

// SetGames replaces the game list. Selection sticks to the same game
// id when it survives the refresh, otherwise falls back to the first
// game, or to none on an empty slate.
func (s *State) SetGames(games []model.Game) {
	var keepID string
	if g, ok := s.SelectedGame(); ok {
		keepID = g.ID
	}

	s.Games = games
	s.Selected = -1
	if len(games) == 0 {
		return
	}

	s.Selected = 0
	for i, g := range games {
		if keepID != "" && g.ID == keepID {
			s.Selected = i
			return
		}
	}
}

// SelectedGame returns the selected game, if any.
func (s *State) SelectedGame() (model.Game, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Games) {
		return model.Game{}, false
	}
	return s.Games[s.Selected], true
}

// Select clamps i into the game list.
func (s *State) Select(i int) {
	if len(s.Games) == 0 {
		s.Selected = -1
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(s.Games) {
		i = len(s.Games) - 1
	}
	s.Selected = i
}

// SetFilter installs a team filter. Filtering never moves the
// selection; it only changes highlighting.
func (s *State) SetFilter(f string) { s.Filter = f }

// ClearFilter drops the active filter.
func (s *State) ClearFilter() { s.Filter = "" }

// MatchCount reports how many games match the active filter.
func (s *State) MatchCount() int {
	if s.Filter == "" {
		return 0
	}
	n := 0
	for _, g := range s.Games {
		if g.AwayTeam.Matches(s.Filter) || g.HomeTeam.Matches(s.Filter) {
			n++
		}
	}
	return n
}

// SetDate moves the dashboard to another calendar date. Day-scoped
// data is dropped so stale markers never show under the new date.
func (s *State) SetDate(d time.Time) {
	if s.DateString() == d.Format("2006-01-02") {
		return
	}
	s.Date = d
	s.Games = nil
	s.Selected = -1
	s.Odds = model.OddsBook{}
	s.Heat = model.HeatMap{}
}

// NextDay advances the viewed date by one day.
func (s *State) NextDay() { s.SetDate(s.Date.AddDate(0, 0, 1)) }

// PrevDay moves the viewed date back one day.
func (s *State) PrevDay() { s.SetDate(s.Date.AddDate(0, 0, -1)) }

// Today snaps back to now's date.
func (s *State) Today(now time.Time) { s.SetDate(now) }

// ToggleOdds flips the odds readout on the status line.
func (s *State) ToggleOdds() { s.ShowOdds = !s.ShowOdds }

// SetOdds replaces the odds book, keeping the map non-nil.
func (s *State) SetOdds(book model.OddsBook) {
	if book == nil {
		book = model.OddsBook{}
	}
	s.Odds = book
}

// SetHeat replaces the heat map, keeping the map non-nil.
func (s *State) SetHeat(heat model.HeatMap) {
	if heat == nil {
		heat = model.HeatMap{}
	}
	s.Heat = heat
}

// SetStandings replaces the conference standings.
func (s *State) SetStandings(rows []model.Standing) { s.Standings = rows }
