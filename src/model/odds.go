package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Odds is one market snapshot for a matchup. Probabilities, prices,
// and volume are decimals, never floats. ClobIDs are the market's
// token ids (away side first) used for price history lookups.
type Odds struct {
	AwayTeam string          `json:"awayTeam"`
	HomeTeam string          `json:"homeTeam"`
	AwayOdds decimal.Decimal `json:"awayOdds"`
	HomeOdds decimal.Decimal `json:"homeOdds"`
	AwayProb decimal.Decimal `json:"awayProb"`
	HomeProb decimal.Decimal `json:"homeProb"`
	Volume   decimal.Decimal `json:"volume"`
	Date     string          `json:"date"`
	Source   string          `json:"source"`
	ClobIDs  []string        `json:"clobTokenIds,omitempty"`
}

// DecimalOdds converts a win probability to decimal (European) odds,
// rounded to two places. Zero or negative probability yields zero.
func DecimalOdds(prob decimal.Decimal) decimal.Decimal {
	if !prob.IsPositive() {
		return decimal.Zero
	}
	return decimal.NewFromInt(1).Div(prob).Round(2)
}

// OddsKey builds the market lookup key "AWAY_HOME_YYYY-MM-DD".
func OddsKey(away, home, date string) string {
	return away + "_" + home + "_" + date
}

// OddsBook is the full odds snapshot keyed by OddsKey.
type OddsBook map[string]Odds

// Lookup finds odds for a game by its own date key, falling back to
// the next-day key when the market date is shifted by timezone.
func (b OddsBook) Lookup(g Game) (Odds, bool) {
	if len(b) == 0 {
		return Odds{}, false
	}
	date := g.Date()
	if date.IsZero() {
		return Odds{}, false
	}

	away, home := g.AwayTeam.Tricode, g.HomeTeam.Tricode
	if o, ok := b[OddsKey(away, home, date.Format("2006-01-02"))]; ok {
		return o, true
	}
	next := date.Add(24 * time.Hour).Format("2006-01-02")
	if o, ok := b[OddsKey(away, home, next)]; ok {
		return o, true
	}
	return Odds{}, false
}
