package social

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/courtside/courtside/src/logging"
	"github.com/courtside/courtside/src/model"
)

// maxInFlight bounds concurrent social requests so a slate of fifteen
// games never opens thirty sockets at once.
const maxInFlight = 4

// Source is the slice of the service client the fan-out needs.
type Source interface {
	Heat(ctx context.Context, team1, team2 string) (model.Heat, error)
	Posts(ctx context.Context, team1, team2 string, limit int) ([]model.SocialPost, error)
}

// Result is the merged outcome of one fan-out pass.
type Result struct {
	Heat  model.HeatMap
	Posts map[string][]model.SocialPost
}

// FetchAll fans heat and post fetches out over the slate, bounded by
// maxInFlight, and waits for all of them. Every game gets a heat
// entry: failed fetches fall back to volume-derived heat and no
// posts, and never disturb the other games.
func FetchAll(ctx context.Context, src Source, games []model.Game, odds model.OddsBook, limit int) Result {
	type heatSlot struct {
		heat model.Heat
		ok   bool
	}
	heats := make([]heatSlot, len(games))
	posts := make([][]model.SocialPost, len(games))

	var g errgroup.Group
	g.SetLimit(maxInFlight)

	for i, game := range games {
		i, game := i, game
		t1, t2 := threadNames(game)

		g.Go(func() error {
			heat, err := src.Heat(ctx, t1, t2)
			if err != nil {
				logging.Warn("social heat fetch failed", "game", game.ID, "error", err)
				return nil
			}
			heats[i] = heatSlot{heat: heat, ok: true}
			return nil
		})
		g.Go(func() error {
			sample, err := src.Posts(ctx, t1, t2, limit)
			if err != nil {
				logging.Warn("social posts fetch failed", "game", game.ID, "error", err)
				return nil
			}
			posts[i] = sample
			return nil
		})
	}
	// Closures absorb their own errors, so Wait only synchronizes.
	_ = g.Wait()

	out := Result{
		Heat:  make(model.HeatMap, len(games)),
		Posts: make(map[string][]model.SocialPost, len(games)),
	}
	for i, game := range games {
		var entry *model.Odds
		if o, ok := odds.Lookup(game); ok {
			entry = &o
		}
		out.Heat[game.ID] = Derive(game, heats[i].heat, heats[i].ok, entry)
		if len(posts[i]) > 0 {
			out.Posts[game.ID] = posts[i]
		}
	}
	return out
}

// threadNames are the lowercase team names the service's social
// routes key threads by, with the tricode as a last resort.
func threadNames(g model.Game) (string, string) {
	return threadName(g.AwayTeam), threadName(g.HomeTeam)
}

func threadName(t model.Team) string {
	if t.Name != "" {
		return strings.ToLower(t.Name)
	}
	return strings.ToLower(t.Tricode)
}
