package model

// PlayerLine is one player's box score row.
type PlayerLine struct {
	Name     string `json:"name"`
	Minutes  string `json:"minutes"`
	Points   int    `json:"points"`
	Rebounds int    `json:"rebounds"`
	Assists  int    `json:"assists"`
	Steals   int    `json:"steals"`
	Blocks   int    `json:"blocks"`
	OnCourt  bool   `json:"onCourt"`
}

// TeamBox is one team's side of a box score.
type TeamBox struct {
	Tricode string       `json:"teamTricode"`
	Players []PlayerLine `json:"players"`
}

// BoxScore is the nested per-team per-player statistics for a game.
type BoxScore struct {
	GameID string  `json:"gameId"`
	Home   TeamBox `json:"homeTeam"`
	Away   TeamBox `json:"awayTeam"`
}

// TopScorer returns the highest-scoring player line of a team box, or
// false for an empty box.
func (tb TeamBox) TopScorer() (PlayerLine, bool) {
	if len(tb.Players) == 0 {
		return PlayerLine{}, false
	}
	best := tb.Players[0]
	for _, p := range tb.Players[1:] {
		if p.Points > best.Points {
			best = p
		}
	}
	return best, true
}

// PlayEvent is one entry of a game's play-by-play feed, in order.
type PlayEvent struct {
	Period      int    `json:"period"`
	Clock       string `json:"clock"`
	Tricode     string `json:"teamTricode"`
	Description string `json:"description"`
	HomeScore   int    `json:"homeScore"`
	AwayScore   int    `json:"awayScore"`
}
