package tui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/courtside/courtside/src/api"
	"github.com/courtside/courtside/src/cache"
	"github.com/courtside/courtside/src/config"
	"github.com/courtside/courtside/src/model"
	"github.com/courtside/courtside/src/store"
)

func memCache(t *testing.T) cache.Cache {
	t.Helper()
	c, err := cache.New(cache.Config{Backend: "memory", TTL: time.Minute})
	if err != nil {
		t.Fatalf("cache.New: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func tempStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "snapshots.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

func TestFetcherGamesSnapshotFallback(t *testing.T) {
	games := slate()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/games/today" {
			http.NotFound(w, r)
			return
		}
		writeJSON(t, w, map[string]any{"games": games, "count": len(games)})
	}))

	f := newFetcher(api.New(srv.URL, nil, nil), nil, tempStore(t), time.Minute, fixedNow)

	msg := f.Games(context.Background())
	if msg.err != nil {
		t.Fatalf("first fetch failed: %v", msg.err)
	}
	if msg.stale || len(msg.games) != 2 {
		t.Fatalf("fresh fetch: stale=%v games=%d", msg.stale, len(msg.games))
	}

	srv.Close()

	msg = f.Games(context.Background())
	if msg.err == nil {
		t.Fatal("fetch against a dead server should carry the error")
	}
	if !msg.stale {
		t.Fatal("dead server with a snapshot should serve stale data")
	}
	if len(msg.games) != 2 {
		t.Fatalf("snapshot games = %d, want 2", len(msg.games))
	}
	if msg.takenAt.IsZero() {
		t.Error("stale result should carry the snapshot time")
	}
}

func TestFetcherGamesNoSnapshot(t *testing.T) {
	f := newFetcher(api.New("http://127.0.0.1:1", nil, nil), nil, tempStore(t), time.Minute, fixedNow)

	msg := f.Games(context.Background())
	if msg.err == nil {
		t.Fatal("unreachable server should report the error")
	}
	if msg.stale || msg.games != nil {
		t.Error("without a snapshot there is nothing stale to serve")
	}
}

func TestFetcherGamesByDate(t *testing.T) {
	var gotPath atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.Path)
		writeJSON(t, w, map[string]any{"games": []model.Game{}, "count": 0})
	}))
	defer srv.Close()

	f := newFetcher(api.New(srv.URL, nil, nil), nil, nil, time.Minute, fixedNow)
	f.SetDate("2026-01-10")

	if msg := f.Games(context.Background()); msg.err != nil {
		t.Fatalf("fetch: %v", msg.err)
	}
	if p := gotPath.Load(); p != "/games/date/2026-01-10" {
		t.Errorf("non-today dates use the by-date path, got %v", p)
	}
}

func TestFetcherOddsUsesCache(t *testing.T) {
	var hits atomic.Int32
	book := model.OddsBook{
		model.OddsKey("LAL", "BOS", "2026-01-16"): {
			AwayTeam: "LAL", HomeTeam: "BOS",
			AwayProb: decimal.RequireFromString("0.62"),
			HomeProb: decimal.RequireFromString("0.38"),
		},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(t, w, map[string]any{"odds": book, "count": len(book)})
	}))
	defer srv.Close()

	f := newFetcher(api.New(srv.URL, nil, nil), memCache(t), nil, time.Minute, fixedNow)

	first := f.Odds(context.Background())
	if first.err != nil || len(first.book) != 1 {
		t.Fatalf("first odds fetch: err=%v book=%d", first.err, len(first.book))
	}
	second := f.Odds(context.Background())
	if second.err != nil || len(second.book) != 1 {
		t.Fatalf("second odds fetch: err=%v book=%d", second.err, len(second.book))
	}
	if hits.Load() != 1 {
		t.Errorf("server hits = %d, want 1 (second read from cache)", hits.Load())
	}
}

func TestFetcherInvalidateDropsCachedOdds(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(t, w, map[string]any{"odds": model.OddsBook{
			model.OddsKey("LAL", "BOS", "2026-01-16"): {AwayTeam: "LAL", HomeTeam: "BOS"},
		}, "count": 1})
	}))
	defer srv.Close()

	f := newFetcher(api.New(srv.URL, nil, nil), memCache(t), nil, time.Minute, fixedNow)

	f.Odds(context.Background())
	f.Odds(context.Background())
	if hits.Load() != 1 {
		t.Fatalf("server hits before invalidate = %d, want 1", hits.Load())
	}

	f.Invalidate(context.Background())
	f.Odds(context.Background())
	if hits.Load() != 2 {
		t.Errorf("server hits after invalidate = %d, want 2", hits.Load())
	}
}

func TestFetcherOddsSkipsPastDates(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(t, w, map[string]any{"odds": model.OddsBook{}, "count": 0})
	}))
	defer srv.Close()

	f := newFetcher(api.New(srv.URL, nil, nil), nil, nil, time.Minute, fixedNow)
	f.SetDate("2020-01-01")

	msg := f.Odds(context.Background())
	if msg.err != nil {
		t.Fatalf("past date odds: %v", msg.err)
	}
	if len(msg.book) != 0 {
		t.Error("past dates have no live book")
	}
	if hits.Load() != 0 {
		t.Error("past dates must not hit the service")
	}
}

func TestFetcherSocialFanout(t *testing.T) {
	games := slate()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/games/today":
			writeJSON(t, w, map[string]any{"games": games, "count": len(games)})
		case r.URL.Path == "/social/heat/lal/bos":
			writeJSON(t, w, map[string]any{"count": 1500, "level": "fire", "trending": true})
		case r.URL.Path == "/social/tweets/lal/bos":
			writeJSON(t, w, map[string]any{"tweets": []model.SocialPost{
				{Text: "unreal finish", User: "hoops", Likes: 42, ID: "p1"},
			}})
		default:
			// The second matchup's threads are down; it degrades.
			http.Error(w, "boom", http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	f := newFetcher(api.New(srv.URL, nil, nil), nil, nil, time.Minute, fixedNow)

	// Before any games fetch the fan-out has nothing to do.
	if res := f.Social(context.Background()).res; len(res.Heat) != 0 {
		t.Fatalf("fan-out without games returned %d heat entries", len(res.Heat))
	}

	if msg := f.Games(context.Background()); msg.err != nil {
		t.Fatalf("games: %v", msg.err)
	}
	res := f.Social(context.Background()).res

	if res.Heat["0022600101"].Level != model.HeatFire {
		t.Errorf("lal/bos heat = %+v, want fire", res.Heat["0022600101"])
	}
	if got := res.Heat["0022600102"].Level; got != model.HeatCold {
		t.Errorf("failed matchup should degrade to cold, got %v", got)
	}
	if len(res.Posts["0022600101"]) != 1 {
		t.Errorf("posts = %v, want the sampled post", res.Posts["0022600101"])
	}
}

func TestFetcherStandingsCaches(t *testing.T) {
	var hits atomic.Int32
	rows := []model.Standing{
		{Tricode: "BOS", Conference: model.ConferenceEast, Rank: 1, Wins: 30, Losses: 8},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(t, w, map[string]any{"standings": rows})
	}))
	defer srv.Close()

	f := newFetcher(api.New(srv.URL, nil, nil), memCache(t), nil, time.Minute, fixedNow)

	if msg := f.Standings(context.Background()); msg.err != nil || len(msg.rows) != 1 {
		t.Fatalf("first standings: err=%v rows=%d", msg.err, len(msg.rows))
	}
	if msg := f.Standings(context.Background()); len(msg.rows) != 1 {
		t.Fatalf("cached standings: rows=%d", len(msg.rows))
	}
	if hits.Load() != 1 {
		t.Errorf("server hits = %d, want 1", hits.Load())
	}
}

func TestFetcherStandingsSnapshotFallback(t *testing.T) {
	st := tempStore(t)
	if _, err := st.SaveStandings(context.Background(), []model.Standing{
		{Tricode: "OKC", Conference: model.ConferenceWest, Rank: 1},
	}); err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}

	f := newFetcher(api.New("http://127.0.0.1:1", nil, nil), nil, st, time.Minute, fixedNow)

	msg := f.Standings(context.Background())
	if msg.err == nil {
		t.Fatal("dead server should report the error")
	}
	if !msg.stale || len(msg.rows) != 1 || msg.rows[0].Tricode != "OKC" {
		t.Fatalf("snapshot fallback: stale=%v rows=%+v", msg.stale, msg.rows)
	}
}

func TestFetcherDetailIndependentFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/games/boxscore/0022600101":
			writeJSON(t, w, model.BoxScore{
				GameID: "0022600101",
				Home:   model.TeamBox{Tricode: "BOS"},
				Away:   model.TeamBox{Tricode: "LAL"},
			})
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	f := newFetcher(api.New(srv.URL, nil, nil), nil, nil, time.Minute, fixedNow)
	msg := f.Detail(context.Background(), "0022600101")

	if msg.box == nil {
		t.Fatal("box score succeeded and should be present")
	}
	if msg.err == nil {
		t.Error("failed play-by-play should surface in the message error")
	}
	if msg.plays != nil {
		t.Error("failed play-by-play yields no events")
	}
}

func TestFetcherGameOddsAndHistory(t *testing.T) {
	var historyHits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/polymarket/odds/LAL/BOS/2026-01-16":
			writeJSON(t, w, map[string]any{
				"found": true,
				"odds": model.Odds{
					AwayTeam: "LAL", HomeTeam: "BOS",
					AwayProb: decimal.RequireFromString("0.62"),
					HomeProb: decimal.RequireFromString("0.38"),
					ClobIDs:  []string{"clob-1"},
				},
			})
		case "/api/polymarket/history/clob-1":
			historyHits.Add(1)
			writeJSON(t, w, map[string]any{
				"history": []model.PricePoint{
					{Time: 1700000000, Price: decimal.RequireFromString("0.58")},
					{Time: 1700003600, Price: decimal.RequireFromString("0.62")},
				},
				"count": 2,
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := newFetcher(api.New(srv.URL, nil, nil), memCache(t), nil, time.Minute, fixedNow)
	g := testGame("0022600101", "LAL", "BOS", model.StatusLive, 100, 95)

	oddsMsg := f.GameOdds(context.Background(), g)
	if !oddsMsg.found || oddsMsg.odds == nil {
		t.Fatalf("game odds not found: %+v", oddsMsg)
	}
	if len(oddsMsg.odds.ClobIDs) != 1 {
		t.Fatalf("token ids = %v", oddsMsg.odds.ClobIDs)
	}

	hist := f.History(context.Background(), g.ID, "clob-1")
	if len(hist.points) != 2 {
		t.Fatalf("history points = %d, want 2", len(hist.points))
	}
	hist = f.History(context.Background(), g.ID, "clob-1")
	if len(hist.points) != 2 {
		t.Fatalf("cached history points = %d, want 2", len(hist.points))
	}
	if historyHits.Load() != 1 {
		t.Errorf("history hits = %d, want 1 (second read from cache)", historyHits.Load())
	}
}

func TestCachedSourceCachesHeatAndPosts(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch {
		case r.URL.Path == "/social/heat/lakers/celtics":
			writeJSON(t, w, map[string]any{"count": 300, "level": "hot"})
		case r.URL.Path == "/social/tweets/lakers/celtics":
			writeJSON(t, w, map[string]any{"tweets": []model.SocialPost{{Text: "go", User: "u"}}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src := cachedSource{client: api.New(srv.URL, nil, nil), cache: memCache(t), ttl: time.Minute}

	for i := 0; i < 2; i++ {
		h, err := src.Heat(context.Background(), "lakers", "celtics")
		if err != nil || h.Level != model.HeatHot {
			t.Fatalf("heat #%d: %v %+v", i, err, h)
		}
	}
	for i := 0; i < 2; i++ {
		posts, err := src.Posts(context.Background(), "lakers", "celtics", 5)
		if err != nil || len(posts) != 1 {
			t.Fatalf("posts #%d: %v %v", i, err, posts)
		}
	}
	if hits.Load() != 2 {
		t.Errorf("server hits = %d, want 2 (one per endpoint)", hits.Load())
	}
}

// The poller set is thin glue; one integration pass confirms every
// loop fetches and delivers its message type.
func TestPollerSetDeliversMessages(t *testing.T) {
	games := slate()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/games/today":
			writeJSON(t, w, map[string]any{"games": games, "count": len(games)})
		case r.URL.Path == "/api/polymarket/odds":
			writeJSON(t, w, map[string]any{"odds": model.OddsBook{}, "count": 0})
		case r.URL.Path == "/games/standings":
			writeJSON(t, w, map[string]any{"standings": []model.Standing{{Tricode: "BOS"}}})
		case r.URL.Path == "/api/polymarket/props":
			writeJSON(t, w, map[string]any{"props": []model.Prop{{Question: "Champion?"}}})
		default:
			writeJSON(t, w, map[string]any{"count": 0, "level": "cold", "tweets": []model.SocialPost{}})
		}
	}))
	defer srv.Close()

	f := newFetcher(api.New(srv.URL, nil, nil), nil, nil, time.Minute, fixedNow)
	msgs := make(chan tea.Msg, 64)
	ps := newPollerSet(config.PollConfig{
		GamesSeconds:     1,
		OddsSeconds:      1,
		SocialSeconds:    1,
		StandingsSeconds: 1,
	}, f, func(m tea.Msg) { msgs <- m })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ps.Start(ctx)
	defer ps.Stop()

	seen := map[string]bool{}
	deadline := time.After(5 * time.Second)
	for len(seen) < 5 {
		select {
		case msg := <-msgs:
			switch msg.(type) {
			case gamesMsg:
				seen["games"] = true
			case oddsMsg:
				seen["odds"] = true
			case socialMsg:
				seen["social"] = true
			case standingsMsg:
				seen["standings"] = true
			case propsMsg:
				seen["props"] = true
			}
		case <-deadline:
			t.Fatalf("missing poll messages, saw %v", seen)
		}
	}
}
