package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/courtside/courtside/src/config"
	"github.com/courtside/courtside/src/poller"
)

// standingsTTL caches standings and futures between their ten-minute
// poll ticks.
const standingsTTL = 10 * time.Minute

// pollerSet owns the background refresh loops. Each task fetches and
// delivers a message into the update loop; the task error only feeds
// the poller's failure counters and metrics.
type pollerSet struct {
	games     *poller.Poller
	odds      *poller.Poller
	social    *poller.Poller
	standings *poller.Poller
}

func newPollerSet(cfg config.PollConfig, f *fetcher, send func(tea.Msg)) *pollerSet {
	return &pollerSet{
		games: poller.New("games", cfg.Games(), func(ctx context.Context) error {
			msg := f.Games(ctx)
			send(msg)
			return msg.err
		}),
		odds: poller.New("odds", cfg.Odds(), func(ctx context.Context) error {
			msg := f.Odds(ctx)
			send(msg)
			return msg.err
		}),
		social: poller.New("social", cfg.Social(), func(ctx context.Context) error {
			send(f.Social(ctx))
			return nil
		}),
		standings: poller.New("standings", cfg.Standings(), func(ctx context.Context) error {
			msg := f.Standings(ctx)
			send(msg)
			send(f.Props(ctx))
			return msg.err
		}),
	}
}

func (ps *pollerSet) Start(ctx context.Context) {
	ps.games.Start(ctx)
	ps.odds.Start(ctx)
	ps.social.Start(ctx)
	ps.standings.Start(ctx)
}

func (ps *pollerSet) Stop() {
	ps.games.Stop()
	ps.odds.Stop()
	ps.social.Stop()
	ps.standings.Stop()
}

// RefreshAll forces an out-of-band run of every loop, for the manual
// refresh key.
func (ps *pollerSet) RefreshAll() {
	ps.games.Refresh()
	ps.odds.Refresh()
	ps.social.Refresh()
	ps.standings.Refresh()
}

// RefreshDay re-fetches the day-scoped data after a date change.
// Standings are date-independent and keep their own cadence.
func (ps *pollerSet) RefreshDay() {
	ps.games.Refresh()
	ps.odds.Refresh()
}

// RefreshSocial kicks the fan-out, used once the first slate for a new
// date arrives.
func (ps *pollerSet) RefreshSocial() {
	ps.social.Refresh()
}
