package social

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/courtside/courtside/src/model"
)

func TestLevelForCount(t *testing.T) {
	tests := []struct {
		count int
		want  model.HeatLevel
	}{
		{0, model.HeatCold},
		{50, model.HeatCold},
		{51, model.HeatWarm},
		{200, model.HeatWarm},
		{201, model.HeatHot},
		{1000, model.HeatHot},
		{1001, model.HeatFire},
		{15000, model.HeatFire},
	}
	for _, tt := range tests {
		if got := LevelForCount(tt.count); got != tt.want {
			t.Errorf("LevelForCount(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestTrending(t *testing.T) {
	if Trending(500) {
		t.Error("Trending(500) = true, want false")
	}
	if !Trending(501) {
		t.Error("Trending(501) = false, want true")
	}
}

func TestLevelForVolume(t *testing.T) {
	tests := []struct {
		volume string
		want   model.HeatLevel
	}{
		{"0", model.HeatCold},
		{"49999.99", model.HeatCold},
		{"50000", model.HeatWarm},
		{"249999", model.HeatWarm},
		{"250000", model.HeatHot},
		{"999999.99", model.HeatHot},
		{"1000000", model.HeatFire},
	}
	for _, tt := range tests {
		v := decimal.RequireFromString(tt.volume)
		if got := LevelForVolume(v); got != tt.want {
			t.Errorf("LevelForVolume(%s) = %q, want %q", tt.volume, got, tt.want)
		}
	}
}

func crunchGame() model.Game {
	return model.Game{
		ID:       "crunch",
		Status:   model.StatusLive,
		Period:   4,
		Clock:    "PT03M20.00S",
		AwayTeam: model.Team{Tricode: "LAL", Score: 98},
		HomeTeam: model.Team{Tricode: "BOS", Score: 101},
	}
}

func quietGame() model.Game {
	return model.Game{
		ID:       "quiet",
		Status:   model.StatusScheduled,
		AwayTeam: model.Team{Tricode: "GSW"},
		HomeTeam: model.Team{Tricode: "BKN"},
	}
}

func TestDerive(t *testing.T) {
	bigMarket := &model.Odds{Volume: decimal.NewFromInt(300_000)}

	tests := []struct {
		name       string
		game       model.Game
		heat       model.Heat
		haveSignal bool
		odds       *model.Odds
		want       model.HeatLevel
	}{
		{"signal wins", quietGame(), model.Heat{Count: 1200, Level: model.HeatFire}, true, nil, model.HeatFire},
		{"no signal no market", quietGame(), model.Heat{}, false, nil, model.HeatCold},
		{"volume fallback", quietGame(), model.Heat{}, false, bigMarket, model.HeatHot},
		{"crunch floors at hot", crunchGame(), model.Heat{}, false, nil, model.HeatHot},
		{"crunch keeps fire", crunchGame(), model.Heat{Count: 2000, Level: model.HeatFire}, true, nil, model.HeatFire},
		{"missing level classified from count", quietGame(), model.Heat{Count: 300}, true, nil, model.HeatHot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.game, tt.heat, tt.haveSignal, tt.odds)
			if got.Level != tt.want {
				t.Errorf("Derive() level = %q, want %q", got.Level, tt.want)
			}
		})
	}
}

func TestDeriveKeepsSignalFields(t *testing.T) {
	heat := model.Heat{Count: 640, Level: model.HeatHot, Trending: true}
	got := Derive(quietGame(), heat, true, nil)
	if got.Count != 640 || !got.Trending {
		t.Errorf("Derive() = %+v, want count and trending preserved", got)
	}
}
