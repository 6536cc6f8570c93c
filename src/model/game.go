// Package model defines the domain types shared by the data client,
// layout engine, and views: games, odds, heat, standings, box scores.
// JSON tags follow the data service payloads; decoding happens once at
// the client boundary with defaults applied there.
package model

import (
	"fmt"
	"strings"
	"time"
)

// GameStatus is the numeric lifecycle state used by the data service.
type GameStatus int

const (
	StatusScheduled GameStatus = 1
	StatusLive      GameStatus = 2
	StatusFinal     GameStatus = 3
)

// String returns a short human label for the status.
func (s GameStatus) String() string {
	switch s {
	case StatusScheduled:
		return "scheduled"
	case StatusLive:
		return "live"
	case StatusFinal:
		return "final"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Team is one side of a matchup, immutable per snapshot.
type Team struct {
	ID      int    `json:"teamId"`
	Name    string `json:"teamName"`
	City    string `json:"teamCity"`
	Tricode string `json:"teamTricode"`
	Score   int    `json:"score"`
}

// Matches reports whether the team matches a case-insensitive filter
// on tricode, city, or name.
func (t Team) Matches(filter string) bool {
	if filter == "" {
		return false
	}
	f := strings.ToLower(filter)
	return strings.Contains(strings.ToLower(t.Tricode), f) ||
		strings.Contains(strings.ToLower(t.City), f) ||
		strings.Contains(strings.ToLower(t.Name), f)
}

// Game is one scheduled matchup for a day. The game list is replaced
// wholesale on each refresh; games are never mutated in place.
type Game struct {
	ID         string     `json:"gameId"`
	Status     GameStatus `json:"gameStatus"`
	StatusText string     `json:"gameStatusText"`
	Period     int        `json:"period"`
	Clock      string     `json:"gameClock"`
	TimeUTC    string     `json:"gameTimeUTC"`
	HomeTeam   Team       `json:"homeTeam"`
	AwayTeam   Team       `json:"awayTeam"`
}

// IsLive reports whether the game is in progress.
func (g Game) IsLive() bool {
	return g.Status == StatusLive
}

// IsFinal reports whether the game has ended.
func (g Game) IsFinal() bool {
	return g.Status == StatusFinal
}

// IsScheduled reports whether the game has not started.
func (g Game) IsScheduled() bool {
	return g.Status == StatusScheduled
}

// Margin returns the absolute score difference.
func (g Game) Margin() int {
	d := g.HomeTeam.Score - g.AwayTeam.Score
	if d < 0 {
		return -d
	}
	return d
}

// Matchup returns "AWY @ HOME" for headers and log lines.
func (g Game) Matchup() string {
	return g.AwayTeam.Tricode + " @ " + g.HomeTeam.Tricode
}

// Date returns the game's UTC calendar date, or the zero time when
// the scheduled time is missing or malformed.
func (g Game) Date() time.Time {
	if g.TimeUTC == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, g.TimeUTC)
	if err != nil {
		return time.Time{}
	}
	return t.UTC().Truncate(24 * time.Hour)
}

// DateString returns the game date as YYYY-MM-DD, or "" when unknown.
func (g Game) DateString() string {
	d := g.Date()
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

// Crunch-time bounds: 4th period or later, margin within 5, under
// five minutes on the clock.
const (
	crunchPeriod = 4
	crunchMargin = 5
	crunchClock  = 5 * time.Minute
)

// IsCrunchTime reports whether the game is live, late, and close.
func (g Game) IsCrunchTime() bool {
	if !g.IsLive() || g.Period < crunchPeriod || g.Margin() > crunchMargin {
		return false
	}
	left, ok := ParseClock(g.Clock)
	if !ok {
		return false
	}
	return left <= crunchClock
}

// ParseClock parses the service's ISO-8601 game clock (e.g.
// "PT05M30.00S") into a duration. Empty or malformed clocks report
// ok=false.
func ParseClock(clock string) (time.Duration, bool) {
	s := strings.TrimSpace(clock)
	if !strings.HasPrefix(s, "PT") {
		return 0, false
	}
	s = strings.TrimPrefix(s, "PT")

	var mins int
	var secs float64
	if i := strings.Index(s, "M"); i >= 0 {
		if _, err := fmt.Sscanf(s[:i], "%d", &mins); err != nil {
			return 0, false
		}
		s = s[i+1:]
	}
	if strings.HasSuffix(s, "S") {
		if _, err := fmt.Sscanf(strings.TrimSuffix(s, "S"), "%f", &secs); err != nil {
			return 0, false
		}
	} else if s != "" {
		return 0, false
	}

	return time.Duration(mins)*time.Minute + time.Duration(secs*float64(time.Second)), true
}
