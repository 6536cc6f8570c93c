// Package social turns discussion signals into per-game heat. The
// data service samples game threads; this package classifies the
// counts, falls back to market volume when the thread is missing, and
// fans the per-game fetches out with bounded concurrency.
package social

import (
	"github.com/shopspring/decimal"

	"github.com/courtside/courtside/src/model"
)

// Comment-count thresholds for the heat ramp. Trending is a separate
// signal that kicks in earlier than fire.
const (
	fireCount     = 1000
	hotCount      = 200
	warmCount     = 50
	trendingCount = 500
)

// Market-volume fallback thresholds, in play when a matchup has no
// discussion thread yet. Volume is dollars matched on the game's
// market.
var (
	fireVolume = decimal.NewFromInt(1_000_000)
	hotVolume  = decimal.NewFromInt(250_000)
	warmVolume = decimal.NewFromInt(50_000)
)

// LevelForCount classifies a game-thread comment count.
func LevelForCount(count int) model.HeatLevel {
	switch {
	case count > fireCount:
		return model.HeatFire
	case count > hotCount:
		return model.HeatHot
	case count > warmCount:
		return model.HeatWarm
	default:
		return model.HeatCold
	}
}

// Trending reports whether a count clears the trending bar.
func Trending(count int) bool { return count > trendingCount }

// LevelForVolume classifies a market's matched volume.
func LevelForVolume(volume decimal.Decimal) model.HeatLevel {
	switch {
	case volume.GreaterThanOrEqual(fireVolume):
		return model.HeatFire
	case volume.GreaterThanOrEqual(hotVolume):
		return model.HeatHot
	case volume.GreaterThanOrEqual(warmVolume):
		return model.HeatWarm
	default:
		return model.HeatCold
	}
}

// Derive produces the final heat for a game. The service's signal
// wins when present; otherwise market volume stands in. Either way a
// close late game is always at least hot.
func Derive(g model.Game, heat model.Heat, haveSignal bool, odds *model.Odds) model.Heat {
	out := heat
	if !haveSignal {
		out = model.Heat{Level: model.HeatCold}
		if odds != nil {
			out.Level = LevelForVolume(odds.Volume)
		}
	}
	if out.Level == "" {
		// The service sent a raw count without classifying it.
		out.Level = LevelForCount(out.Count)
		out.Trending = Trending(out.Count)
	}
	if g.IsCrunchTime() {
		out.Level = out.Level.Max(model.HeatHot)
	}
	return out
}
