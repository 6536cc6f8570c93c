package social

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/courtside/courtside/src/model"
)

type fakeSource struct {
	heatFn  func(ctx context.Context, t1, t2 string) (model.Heat, error)
	postsFn func(ctx context.Context, t1, t2 string, limit int) ([]model.SocialPost, error)
}

func (f *fakeSource) Heat(ctx context.Context, t1, t2 string) (model.Heat, error) {
	return f.heatFn(ctx, t1, t2)
}

func (f *fakeSource) Posts(ctx context.Context, t1, t2 string, limit int) ([]model.SocialPost, error) {
	return f.postsFn(ctx, t1, t2, limit)
}

func namedGame(id, away, home string) model.Game {
	names := map[string]string{"LAL": "Lakers", "BOS": "Celtics", "GSW": "Warriors", "BKN": "Nets"}
	return model.Game{
		ID:       id,
		Status:   model.StatusScheduled,
		TimeUTC:  "2026-01-15T23:30:00Z",
		AwayTeam: model.Team{Tricode: away, Name: names[away]},
		HomeTeam: model.Team{Tricode: home, Name: names[home]},
	}
}

func TestFetchAllPartialFailure(t *testing.T) {
	games := []model.Game{
		namedGame("a", "LAL", "BOS"),
		namedGame("b", "GSW", "BKN"),
	}
	odds := model.OddsBook{
		model.OddsKey("GSW", "BKN", "2026-01-15"): {Volume: decimal.NewFromInt(300_000)},
	}

	src := &fakeSource{
		heatFn: func(ctx context.Context, t1, t2 string) (model.Heat, error) {
			if t1 == "lakers" {
				return model.Heat{Count: 1400, Level: model.HeatFire, Trending: true}, nil
			}
			return model.Heat{}, errors.New("thread not found")
		},
		postsFn: func(ctx context.Context, t1, t2 string, limit int) ([]model.SocialPost, error) {
			if t1 == "lakers" {
				return []model.SocialPost{{Text: "what a game", User: "u/fan", Likes: 12, ID: "p1"}}, nil
			}
			return nil, errors.New("thread not found")
		},
	}

	res := FetchAll(context.Background(), src, games, odds, 5)

	if got := res.Heat["a"].Level; got != model.HeatFire {
		t.Errorf("game a level = %q, want %q (success untouched by b's failure)", got, model.HeatFire)
	}
	if len(res.Posts["a"]) != 1 {
		t.Errorf("game a posts = %d, want 1", len(res.Posts["a"]))
	}

	if got := res.Heat["b"].Level; got != model.HeatHot {
		t.Errorf("game b level = %q, want %q (volume fallback)", got, model.HeatHot)
	}
	if _, ok := res.Posts["b"]; ok {
		t.Error("game b should have no posts entry after failure")
	}
}

func TestFetchAllEveryGameGetsHeat(t *testing.T) {
	games := []model.Game{namedGame("a", "LAL", "BOS"), namedGame("b", "GSW", "BKN")}
	src := &fakeSource{
		heatFn: func(ctx context.Context, t1, t2 string) (model.Heat, error) {
			return model.Heat{}, errors.New("service down")
		},
		postsFn: func(ctx context.Context, t1, t2 string, limit int) ([]model.SocialPost, error) {
			return nil, errors.New("service down")
		},
	}

	res := FetchAll(context.Background(), src, games, nil, 5)
	for _, g := range games {
		heat, ok := res.Heat[g.ID]
		if !ok {
			t.Fatalf("game %s missing heat entry", g.ID)
		}
		if heat.Level != model.HeatCold {
			t.Errorf("game %s level = %q, want cold", g.ID, heat.Level)
		}
	}
}

func TestFetchAllBoundsConcurrency(t *testing.T) {
	games := make([]model.Game, 6)
	for i := range games {
		games[i] = namedGame(string(rune('a'+i)), "LAL", "BOS")
	}

	var inFlight, peak int64
	track := func() func() {
		n := atomic.AddInt64(&inFlight, 1)
		for {
			old := atomic.LoadInt64(&peak)
			if n <= old || atomic.CompareAndSwapInt64(&peak, old, n) {
				break
			}
		}
		return func() { atomic.AddInt64(&inFlight, -1) }
	}

	src := &fakeSource{
		heatFn: func(ctx context.Context, t1, t2 string) (model.Heat, error) {
			defer track()()
			time.Sleep(5 * time.Millisecond)
			return model.Heat{Level: model.HeatCold}, nil
		},
		postsFn: func(ctx context.Context, t1, t2 string, limit int) ([]model.SocialPost, error) {
			defer track()()
			time.Sleep(5 * time.Millisecond)
			return nil, nil
		},
	}

	FetchAll(context.Background(), src, games, nil, 5)
	if p := atomic.LoadInt64(&peak); p > maxInFlight {
		t.Errorf("peak concurrent fetches = %d, want <= %d", p, maxInFlight)
	}
}

func TestThreadNames(t *testing.T) {
	t1, t2 := threadNames(namedGame("a", "LAL", "BOS"))
	if t1 != "lakers" || t2 != "celtics" {
		t.Errorf("threadNames() = %q, %q, want lakers, celtics", t1, t2)
	}

	bare := model.Game{AwayTeam: model.Team{Tricode: "XYZ"}, HomeTeam: model.Team{Tricode: "ABC"}}
	t1, t2 = threadNames(bare)
	if t1 != "xyz" || t2 != "abc" {
		t.Errorf("threadNames() fallback = %q, %q, want xyz, abc", t1, t2)
	}
}
