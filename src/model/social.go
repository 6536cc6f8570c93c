package model

// HeatLevel classifies how much attention a game is drawing.
type HeatLevel string

const (
	HeatCold HeatLevel = "cold"
	HeatWarm HeatLevel = "warm"
	HeatHot  HeatLevel = "hot"
	HeatFire HeatLevel = "fire"
)

// rank orders levels for comparison; unknown levels rank as cold.
func (l HeatLevel) rank() int {
	switch l {
	case HeatWarm:
		return 1
	case HeatHot:
		return 2
	case HeatFire:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether l is at or above other.
func (l HeatLevel) AtLeast(other HeatLevel) bool {
	return l.rank() >= other.rank()
}

// Max returns the hotter of the two levels.
func (l HeatLevel) Max(other HeatLevel) HeatLevel {
	if other.rank() > l.rank() {
		return other
	}
	return l
}

// Heat is the per-game excitement signal: a level plus the raw
// magnitude (discussion comment count) behind it.
type Heat struct {
	Count    int       `json:"count"`
	Level    HeatLevel `json:"level"`
	Trending bool      `json:"trending"`
}

// HeatMap holds heat keyed by game id.
type HeatMap map[string]Heat

// SocialPost is one sampled discussion post for a matchup.
type SocialPost struct {
	Text  string `json:"text"`
	User  string `json:"user"`
	Likes int    `json:"likes"`
	ID    string `json:"id"`
}
