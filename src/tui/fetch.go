package tui

import (
	"context"
	"sync"
	"time"

	"github.com/courtside/courtside/src/api"
	"github.com/courtside/courtside/src/cache"
	"github.com/courtside/courtside/src/logging"
	"github.com/courtside/courtside/src/model"
	"github.com/courtside/courtside/src/social"
	"github.com/courtside/courtside/src/store"
)

// Messages delivered into the update loop. Poll results always arrive
// as messages, never as errors surfaced to views.
type (
	gamesMsg struct {
		date    string
		games   []model.Game
		err     error
		stale   bool      // true when served from the snapshot store
		takenAt time.Time // snapshot time, set when stale
	}

	oddsMsg struct {
		date string
		book model.OddsBook
		err  error
	}

	socialMsg struct {
		res social.Result
	}

	standingsMsg struct {
		rows  []model.Standing
		err   error
		stale bool
	}

	propsMsg struct {
		props []model.Prop
	}

	detailMsg struct {
		gameID string
		box    *model.BoxScore
		plays  []model.PlayEvent
		err    error
	}

	detailOddsMsg struct {
		gameID string
		odds   *model.Odds
		found  bool
	}

	historyMsg struct {
		gameID string
		points []model.PricePoint
	}
)

// fetcher is the data side of the dashboard: it talks to the service
// client, consults the cache first for slow-moving data, and falls
// back to the snapshot store when the service is unreachable. Poller
// goroutines and detail commands share one instance, so the handful
// of fields that cross goroutines sit behind a mutex.
type fetcher struct {
	client *api.Client
	cache  cache.Cache
	store  *store.Store
	ttl    time.Duration
	now    func() time.Time

	mu        sync.Mutex
	date      string
	lastGames []model.Game
	lastOdds  model.OddsBook
}

func newFetcher(client *api.Client, c cache.Cache, st *store.Store, ttl time.Duration, now func() time.Time) *fetcher {
	if now == nil {
		now = time.Now
	}
	f := &fetcher{
		client:   client,
		cache:    c,
		store:    st,
		ttl:      ttl,
		now:      now,
		lastOdds: model.OddsBook{},
	}
	f.date = now().Format("2006-01-02")
	return f
}

// SetDate switches the fetch date. Stale per-day context is dropped so
// the social fan-out never runs against the previous day's slate.
func (f *fetcher) SetDate(date string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.date == date {
		return
	}
	f.date = date
	f.lastGames = nil
	f.lastOdds = model.OddsBook{}
}

func (f *fetcher) Date() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.date
}

func (f *fetcher) isToday(date string) bool {
	return date == f.now().Format("2006-01-02")
}

func (f *fetcher) isPast(date string) bool {
	return date < f.now().Format("2006-01-02")
}

// Games fetches the viewed date's slate. On failure the latest
// snapshot for that date is served instead, marked stale; the fetch
// error rides along either way so the poller counts the failure.
func (f *fetcher) Games(ctx context.Context) gamesMsg {
	date := f.Date()

	var (
		games []model.Game
		err   error
	)
	if f.isToday(date) {
		games, err = f.client.GamesToday(ctx)
	} else {
		games, err = f.client.GamesByDate(ctx, date)
	}
	if err != nil {
		logging.Warn("games fetch failed", "date", date, "error", err)
		if f.store != nil {
			if snap, at, serr := f.store.LatestGames(ctx, date); serr == nil {
				f.keepGames(date, snap)
				return gamesMsg{date: date, games: snap, err: err, stale: true, takenAt: at}
			}
		}
		return gamesMsg{date: date, err: err}
	}

	f.keepGames(date, games)
	if f.store != nil {
		if _, serr := f.store.SaveGames(ctx, date, games); serr != nil {
			logging.Warn("snapshot save failed", "date", date, "error", serr)
		}
	}
	return gamesMsg{date: date, games: games}
}

func (f *fetcher) keepGames(date string, games []model.Game) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.date == date {
		f.lastGames = games
	}
}

// Odds fetches the odds book, cache first. Past dates skip the network
// entirely: closed markets have no live book to fetch.
func (f *fetcher) Odds(ctx context.Context) oddsMsg {
	date := f.Date()
	if f.isPast(date) {
		return oddsMsg{date: date, book: model.OddsBook{}}
	}

	key := cache.OddsKey(date)
	if f.cache != nil {
		var book model.OddsBook
		if err := cache.GetJSON(ctx, f.cache, key, &book); err == nil && len(book) > 0 {
			f.keepOdds(date, book)
			return oddsMsg{date: date, book: book}
		}
	}

	book, err := f.client.OddsBook(ctx)
	if err != nil {
		logging.Warn("odds fetch failed", "date", date, "error", err)
		return oddsMsg{date: date, book: model.OddsBook{}, err: err}
	}
	f.keepOdds(date, book)
	if f.cache != nil {
		if cerr := cache.SetJSON(ctx, f.cache, key, book, f.ttl); cerr != nil {
			logging.Debug("odds cache write failed", "error", cerr)
		}
	}
	return oddsMsg{date: date, book: book}
}

func (f *fetcher) keepOdds(date string, book model.OddsBook) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.date == date {
		f.lastOdds = book
	}
}

func (f *fetcher) snapshot() (games []model.Game, odds model.OddsBook) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastGames, f.lastOdds
}

// Invalidate drops the cached responses behind the visible pages so a
// forced refresh hits the service instead of replaying the cache.
func (f *fetcher) Invalidate(ctx context.Context) {
	if f.cache == nil {
		return
	}
	patterns := []string{
		cache.DayPattern(f.Date()),
		"heat:*",
		"posts:*",
		cache.StandingsKey(),
		cache.PropsKey(f.now().Format("2006-01-02")),
	}
	for _, pattern := range patterns {
		if err := f.cache.Clear(ctx, pattern); err != nil {
			logging.Debug("cache invalidate failed", "pattern", pattern, "error", err)
		}
	}
}

// Social runs the heat/posts fan-out over the last fetched slate.
// Per-game failures degrade inside the fan-out, so this never reports
// an error to the poller.
func (f *fetcher) Social(ctx context.Context) socialMsg {
	games, odds := f.snapshot()
	if len(games) == 0 {
		return socialMsg{res: social.Result{Heat: model.HeatMap{}}}
	}
	src := cachedSource{client: f.client, cache: f.cache, ttl: f.ttl}
	return socialMsg{res: social.FetchAll(ctx, src, games, odds, api.DefaultPostLimit)}
}

// Standings fetches conference standings, cache first, snapshotting on
// success and serving the last snapshot when the service is down.
func (f *fetcher) Standings(ctx context.Context) standingsMsg {
	key := cache.StandingsKey()
	if f.cache != nil {
		var rows []model.Standing
		if err := cache.GetJSON(ctx, f.cache, key, &rows); err == nil && len(rows) > 0 {
			return standingsMsg{rows: rows}
		}
	}

	rows, err := f.client.Standings(ctx)
	if err != nil {
		logging.Warn("standings fetch failed", "error", err)
		if f.store != nil {
			if snap, _, serr := f.store.LatestStandings(ctx); serr == nil {
				return standingsMsg{rows: snap, err: err, stale: true}
			}
		}
		return standingsMsg{err: err}
	}

	if f.cache != nil {
		if cerr := cache.SetJSON(ctx, f.cache, key, rows, standingsTTL); cerr != nil {
			logging.Debug("standings cache write failed", "error", cerr)
		}
	}
	if f.store != nil {
		if _, serr := f.store.SaveStandings(ctx, rows); serr != nil {
			logging.Warn("standings snapshot save failed", "error", serr)
		}
	}
	return standingsMsg{rows: rows}
}

// Props fetches the season-long markets. Failures just leave the
// futures panel empty until the next standings tick.
func (f *fetcher) Props(ctx context.Context) propsMsg {
	key := cache.PropsKey(f.now().Format("2006-01-02"))
	if f.cache != nil {
		var props []model.Prop
		if err := cache.GetJSON(ctx, f.cache, key, &props); err == nil && len(props) > 0 {
			return propsMsg{props: props}
		}
	}

	props, err := f.client.Props(ctx)
	if err != nil {
		logging.Warn("props fetch failed", "error", err)
		return propsMsg{}
	}
	if f.cache != nil {
		if cerr := cache.SetJSON(ctx, f.cache, key, props, standingsTTL); cerr != nil {
			logging.Debug("props cache write failed", "error", cerr)
		}
	}
	return propsMsg{props: props}
}

// Detail fetches the box score and play-by-play for one game. The two
// calls fail independently; whichever succeeds still renders.
func (f *fetcher) Detail(ctx context.Context, gameID string) detailMsg {
	msg := detailMsg{gameID: gameID}

	box, err := f.client.BoxScore(ctx, gameID)
	if err != nil {
		logging.Warn("box score fetch failed", "game", gameID, "error", err)
		msg.err = err
	} else {
		msg.box = box
	}

	plays, err := f.client.PlayByPlay(ctx, gameID)
	if err != nil {
		logging.Warn("play-by-play fetch failed", "game", gameID, "error", err)
		if msg.err == nil {
			msg.err = err
		}
	} else {
		msg.plays = plays
	}
	return msg
}

// GameOdds resolves one matchup's market line directly, used by the
// detail page after standings have loaded.
func (f *fetcher) GameOdds(ctx context.Context, g model.Game) detailOddsMsg {
	date := g.DateString()
	if date == "" {
		date = f.Date()
	}
	odds, found, err := f.client.GameOdds(ctx, g.AwayTeam.Tricode, g.HomeTeam.Tricode, date)
	if err != nil {
		logging.Warn("game odds fetch failed", "game", g.Matchup(), "error", err)
		return detailOddsMsg{gameID: g.ID}
	}
	return detailOddsMsg{gameID: g.ID, odds: odds, found: found}
}

// History fetches the 24h price curve for a market token, cache first.
func (f *fetcher) History(ctx context.Context, gameID, clobID string) historyMsg {
	key := cache.HistoryKey(clobID)
	if f.cache != nil {
		var points []model.PricePoint
		if err := cache.GetJSON(ctx, f.cache, key, &points); err == nil && len(points) > 0 {
			return historyMsg{gameID: gameID, points: points}
		}
	}

	points, err := f.client.PriceHistory(ctx, clobID)
	if err != nil {
		logging.Warn("price history fetch failed", "clob", clobID, "error", err)
		return historyMsg{gameID: gameID}
	}
	if f.cache != nil {
		if cerr := cache.SetJSON(ctx, f.cache, key, points, f.ttl); cerr != nil {
			logging.Debug("history cache write failed", "error", cerr)
		}
	}
	return historyMsg{gameID: gameID, points: points}
}

// cachedSource puts the cache in front of the per-matchup social
// endpoints so the fan-out only hits the service on cold keys.
type cachedSource struct {
	client *api.Client
	cache  cache.Cache
	ttl    time.Duration
}

func (s cachedSource) Heat(ctx context.Context, team1, team2 string) (model.Heat, error) {
	key := cache.HeatKey(team1, team2)
	if s.cache != nil {
		var h model.Heat
		if err := cache.GetJSON(ctx, s.cache, key, &h); err == nil {
			return h, nil
		}
	}
	h, err := s.client.Heat(ctx, team1, team2)
	if err != nil {
		return model.Heat{}, err
	}
	if s.cache != nil {
		if cerr := cache.SetJSON(ctx, s.cache, key, h, s.ttl); cerr != nil {
			logging.Debug("heat cache write failed", "error", cerr)
		}
	}
	return h, nil
}

func (s cachedSource) Posts(ctx context.Context, team1, team2 string, limit int) ([]model.SocialPost, error) {
	key := cache.PostsKey(team1, team2)
	if s.cache != nil {
		var posts []model.SocialPost
		if err := cache.GetJSON(ctx, s.cache, key, &posts); err == nil {
			return posts, nil
		}
	}
	posts, err := s.client.Posts(ctx, team1, team2, limit)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if cerr := cache.SetJSON(ctx, s.cache, key, posts, s.ttl); cerr != nil {
			logging.Debug("posts cache write failed", "error", cerr)
		}
	}
	return posts, nil
}
