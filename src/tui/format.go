package tui

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/courtside/courtside/src/model"
)

var (
	hundred  = decimal.NewFromInt(100)
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
)

// fmtProb renders a win probability as a whole percentage.
func fmtProb(p decimal.Decimal) string {
	return p.Mul(hundred).Round(0).String() + "%"
}

// fmtPrice renders a probability as decimal odds with two places.
func fmtPrice(p decimal.Decimal) string {
	return model.DecimalOdds(p).StringFixed(2)
}

// fmtVolume humanizes a dollar volume: $1.2M, $340k, $87.
func fmtVolume(v decimal.Decimal) string {
	switch {
	case v.GreaterThanOrEqual(million):
		return "$" + v.Div(million).Round(1).String() + "M"
	case v.GreaterThanOrEqual(thousand):
		return "$" + v.Div(thousand).Round(0).String() + "k"
	default:
		return "$" + v.Round(0).String()
	}
}

// statusLabel is the short lifecycle readout shown next to a matchup:
// tipoff text for scheduled games, period and clock for live ones,
// FINAL once it is over.
func statusLabel(g model.Game) string {
	switch {
	case g.IsLive():
		return fmt.Sprintf("Q%d %s", g.Period, fmtClock(g.Clock))
	case g.IsFinal():
		return "FINAL"
	default:
		if g.StatusText != "" {
			return g.StatusText
		}
		return "scheduled"
	}
}

// fmtClock turns the service's ISO clock into MM:SS, passing malformed
// values through untouched.
func fmtClock(clock string) string {
	d, ok := model.ParseClock(clock)
	if !ok {
		return clock
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// fmtPct renders a winning percentage the box-score way: .780.
func fmtPct(pct float64) string {
	s := fmt.Sprintf("%.3f", pct)
	return strings.TrimPrefix(s, "0")
}

// fmtGamesBack renders games-behind with the conference-leader dash.
func fmtGamesBack(gb float64) string {
	if gb <= 0 {
		return "—"
	}
	return fmt.Sprintf("%.1f", gb)
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// sparkline compresses a price series into a fixed-width block-rune
// strip. Flat series render at mid-height.
func sparkline(points []model.PricePoint, width int) string {
	if len(points) == 0 || width <= 0 {
		return ""
	}
	if len(points) > width {
		points = points[len(points)-width:]
	}

	lo, hi := points[0].Price.InexactFloat64(), points[0].Price.InexactFloat64()
	for _, p := range points[1:] {
		v := p.Price.InexactFloat64()
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var sb strings.Builder
	for _, p := range points {
		idx := len(sparkRunes) / 2
		if hi > lo {
			v := p.Price.InexactFloat64()
			idx = int((v - lo) / (hi - lo) * float64(len(sparkRunes)-1))
		}
		sb.WriteRune(sparkRunes[idx])
	}
	return sb.String()
}
