package theme

import "github.com/charmbracelet/lipgloss"

// teamColors holds one accent color per franchise, chosen from each
// team's brand palette for legibility on a dark background.
var teamColors = map[string]lipgloss.Color{
	"ATL": lipgloss.Color("#e03a3e"),
	"BOS": lipgloss.Color("#00a35c"),
	"BKN": lipgloss.Color("#c6cfd4"),
	"CHA": lipgloss.Color("#00788c"),
	"CHI": lipgloss.Color("#ce1141"),
	"CLE": lipgloss.Color("#fdbb30"),
	"DAL": lipgloss.Color("#0091e0"),
	"DEN": lipgloss.Color("#fec524"),
	"DET": lipgloss.Color("#c8102e"),
	"GSW": lipgloss.Color("#ffc72c"),
	"HOU": lipgloss.Color("#ce1141"),
	"IND": lipgloss.Color("#fdbb30"),
	"LAC": lipgloss.Color("#c8102e"),
	"LAL": lipgloss.Color("#fdb927"),
	"MEM": lipgloss.Color("#5d76a9"),
	"MIA": lipgloss.Color("#f9a01b"),
	"MIL": lipgloss.Color("#00b562"),
	"MIN": lipgloss.Color("#78be20"),
	"NOP": lipgloss.Color("#b4975a"),
	"NYK": lipgloss.Color("#f58426"),
	"OKC": lipgloss.Color("#007ac1"),
	"ORL": lipgloss.Color("#0077c0"),
	"PHI": lipgloss.Color("#2f92d6"),
	"PHX": lipgloss.Color("#e56020"),
	"POR": lipgloss.Color("#e03a3e"),
	"SAC": lipgloss.Color("#8e6bb8"),
	"SAS": lipgloss.Color("#c4ced4"),
	"TOR": lipgloss.Color("#ce1141"),
	"UTA": lipgloss.Color("#f9a01b"),
	"WAS": lipgloss.Color("#e31837"),
}

// TeamColor returns a team's accent color, with the theme text color
// as the fallback for unknown tricodes.
func TeamColor(tricode string, t Theme) lipgloss.Color {
	if c, ok := teamColors[tricode]; ok {
		return c
	}
	return t.Colors.Text
}

// HeatColor returns the ramp color for a heat level: yellow, orange,
// red as the discussion gets louder; muted for cold. The warm yellow
// is picked per theme, since the dark-theme shade washes out on a
// light background.
func HeatColor(level string, t Theme) lipgloss.Color {
	switch level {
	case "warm":
		if t.IsDark {
			return lipgloss.Color("#f1fa8c")
		}
		return lipgloss.Color("#b58900")
	case "hot":
		return t.Colors.Warning
	case "fire":
		return t.Colors.Error
	default:
		return t.Colors.Muted
	}
}
