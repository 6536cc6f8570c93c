package model

// Conference names as the data service reports them.
const (
	ConferenceEast = "East"
	ConferenceWest = "West"
)

// Standing is one team's record row.
type Standing struct {
	Tricode    string  `json:"teamTricode"`
	Team       string  `json:"teamName"`
	Conference string  `json:"conference"`
	Rank       int     `json:"rank"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	WinPct     float64 `json:"winPct"`
	GamesBack  float64 `json:"gamesBack"`
}

// ByConference splits standings into East and West, preserving rank
// order within each conference.
func ByConference(rows []Standing) (east, west []Standing) {
	for _, s := range rows {
		switch s.Conference {
		case ConferenceWest:
			west = append(west, s)
		default:
			east = append(east, s)
		}
	}
	return east, west
}
