// Package tui is the terminal dashboard: a bubbletea program drawing
// the day's games over a US map with market odds and social heat,
// plus a box score detail page and a standings view. The update loop
// is the only writer of view state; pollers deliver data as messages.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/courtside/courtside/src/api"
	"github.com/courtside/courtside/src/cache"
	"github.com/courtside/courtside/src/config"
	"github.com/courtside/courtside/src/model"
	"github.com/courtside/courtside/src/store"
	"github.com/courtside/courtside/src/terminal"
	"github.com/courtside/courtside/src/theme"
	"github.com/courtside/courtside/src/view"
)

const (
	// blinkInterval drives the live-dot and crunch-time flash cadence.
	blinkInterval = 500 * time.Millisecond

	// fetchTimeout bounds one-shot fetches triggered from the update
	// loop (detail page loads). Poller fetches are bounded by the
	// HTTP client timeout instead.
	fetchTimeout = 10 * time.Second
)

type page int

const (
	pageMap page = iota
	pageDetail
)

type blinkMsg time.Time

func blinkTick() tea.Cmd {
	return tea.Tick(blinkInterval, func(t time.Time) tea.Msg {
		return blinkMsg(t)
	})
}

// detailState is the per-game data behind the detail page, reset every
// time a game is opened.
type detailState struct {
	gameID   string
	box      *model.BoxScore
	plays    []model.PlayEvent
	odds     *model.Odds
	history  []model.PricePoint
	viewport viewport.Model
	loading  bool
	err      error
}

// App is the bubbletea model. It carries the shared view state plus
// page, chrome, and connection bookkeeping.
type App struct {
	st      *view.State
	theme   theme.Theme
	styles  styles
	fetch   *fetcher
	pollers *pollerSet
	now     func() time.Time

	page          page
	width         int
	height        int
	mode          terminal.SizeMode
	blinkOn       bool
	connected     bool
	stale         bool
	staleAt       time.Time
	loading       bool
	showStandings bool

	posts map[string][]model.SocialPost
	props []model.Prop

	filterInput textinput.Model
	filtering   bool

	detail detailState
}

func newApp(t theme.Theme, f *fetcher, ps *pollerSet, now func() time.Time) App {
	if now == nil {
		now = time.Now
	}
	ti := textinput.New()
	ti.Placeholder = "team, city, or tricode"
	ti.Prompt = "/"
	ti.CharLimit = 24
	ti.Width = 24

	return App{
		st:          view.New(now()),
		theme:       t,
		styles:      newStyles(t),
		fetch:       f,
		pollers:     ps,
		now:         now,
		loading:     true,
		posts:       map[string][]model.SocialPost{},
		filterInput: ti,
	}
}

func (m App) Init() tea.Cmd {
	return blinkTick()
}

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.mode = terminal.ModeFor(msg.Width)
		m.detail.viewport.Width = max(msg.Width, 1)
		m.detail.viewport.Height = m.detailViewportHeight()
		return m, nil

	case blinkMsg:
		m.blinkOn = !m.blinkOn
		return m, blinkTick()

	case gamesMsg:
		// A slow fetch can land after the user moved to another
		// date; drop it rather than show the wrong slate.
		if msg.date != m.st.DateString() {
			return m, nil
		}
		m.loading = false
		m.connected = msg.err == nil
		m.stale = msg.stale
		m.staleAt = msg.takenAt
		hadGames := len(m.st.Games) > 0
		m.st.SetGames(msg.games)
		if !hadGames && len(msg.games) > 0 && m.pollers != nil {
			m.pollers.RefreshSocial()
		}
		return m, nil

	case oddsMsg:
		if msg.date != m.st.DateString() {
			return m, nil
		}
		if msg.err == nil {
			m.st.SetOdds(msg.book)
		}
		return m, nil

	case socialMsg:
		m.st.SetHeat(msg.res.Heat)
		if msg.res.Posts != nil {
			m.posts = msg.res.Posts
		}
		return m, nil

	case standingsMsg:
		if msg.rows != nil {
			m.st.SetStandings(msg.rows)
		}
		return m, nil

	case propsMsg:
		if msg.props != nil {
			m.props = msg.props
		}
		return m, nil

	case detailMsg:
		if msg.gameID != m.detail.gameID {
			return m, nil
		}
		m.detail.loading = false
		m.detail.box = msg.box
		m.detail.plays = msg.plays
		m.detail.err = msg.err
		m.detail.viewport.SetContent(m.detailContent())
		return m, nil

	case detailOddsMsg:
		if msg.gameID != m.detail.gameID {
			return m, nil
		}
		if msg.found {
			m.detail.odds = msg.odds
			if len(msg.odds.ClobIDs) > 0 {
				return m, m.loadHistory(msg.gameID, msg.odds.ClobIDs[0])
			}
		}
		return m, nil

	case historyMsg:
		if msg.gameID != m.detail.gameID {
			return m, nil
		}
		m.detail.history = msg.points
		return m, nil
	}

	if m.page == pageDetail {
		var cmd tea.Cmd
		m.detail.viewport, cmd = m.detail.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "esc":
			m.filtering = false
			m.filterInput.Blur()
			m.filterInput.SetValue("")
			m.st.ClearFilter()
			return m, nil
		case "enter":
			m.filtering = false
			m.filterInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.filterInput, cmd = m.filterInput.Update(msg)
			m.st.SetFilter(m.filterInput.Value())
			return m, cmd
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "esc":
		if m.page == pageDetail {
			m.page = pageMap
			return m, nil
		}
		if m.st.Filter != "" {
			m.st.ClearFilter()
			m.filterInput.SetValue("")
		}
		return m, nil

	case "up", "k":
		return m.move(view.DirUp, msg)
	case "down", "j":
		return m.move(view.DirDown, msg)
	case "left", "h":
		return m.move(view.DirLeft, msg)
	case "right", "l":
		return m.move(view.DirRight, msg)

	case "enter":
		if m.page == pageMap {
			return m.openDetail()
		}
		return m, nil

	case "/":
		if m.page == pageMap {
			m.filtering = true
			m.filterInput.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case "tab":
		m.showStandings = !m.showStandings
		return m, nil

	case "[":
		return m.changeDate(m.st.PrevDay)
	case "]":
		return m.changeDate(m.st.NextDay)
	case "t":
		return m.changeDate(func() { m.st.Today(m.now()) })

	case "r":
		m.loading = len(m.st.Games) == 0
		return m, m.forceRefresh()

	case "o":
		m.st.ToggleOdds()
		return m, nil
	}

	return m, nil
}

// move navigates the map or scrolls the detail viewport, depending on
// the active page.
func (m App) move(d view.Direction, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.page == pageDetail {
		var cmd tea.Cmd
		m.detail.viewport, cmd = m.detail.viewport.Update(msg)
		return m, cmd
	}
	m.st.Move(d)
	return m, nil
}

// forceRefresh invalidates the cache for everything on screen and then
// kicks every poller. Both happen off the update loop: the redis
// backend clears over the network.
func (m App) forceRefresh() tea.Cmd {
	f, ps := m.fetch, m.pollers
	return func() tea.Msg {
		if f != nil {
			ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
			defer cancel()
			f.Invalidate(ctx)
		}
		if ps != nil {
			ps.RefreshAll()
		}
		return nil
	}
}

// changeDate applies a date action and, when the viewed date actually
// moved, re-aims the fetcher and kicks the day-scoped pollers.
// Selection resets through the state's date handling.
func (m App) changeDate(apply func()) (tea.Model, tea.Cmd) {
	before := m.st.DateString()
	apply()
	after := m.st.DateString()
	if before == after {
		return m, nil
	}
	m.loading = true
	m.stale = false
	if m.fetch != nil {
		m.fetch.SetDate(after)
	}
	if m.pollers != nil {
		m.pollers.RefreshDay()
	}
	return m, nil
}

// openDetail switches to the detail page for the selected game and
// starts its fetches: box score and play-by-play together, standings
// first and then the game's market line, in that order.
func (m App) openDetail() (tea.Model, tea.Cmd) {
	g, ok := m.st.SelectedGame()
	if !ok {
		return m, nil
	}
	m.page = pageDetail
	m.detail = detailState{gameID: g.ID, loading: true}
	m.detail.viewport = viewport.New(max(m.width, 1), m.detailViewportHeight())

	return m, tea.Batch(
		m.loadDetail(g.ID),
		tea.Sequence(m.loadStandings(false), m.loadGameOdds(g)),
	)
}

// detailViewportHeight leaves room for the header, market line, and
// help row around the scrollable body.
func (m App) detailViewportHeight() int {
	return max(m.height-7, 3)
}

func (m App) loadDetail(gameID string) tea.Cmd {
	f := m.fetch
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return f.Detail(ctx, gameID)
	}
}

// loadStandings fetches standings unless they are already loaded; the
// empty message is ignored by Update.
func (m App) loadStandings(force bool) tea.Cmd {
	have := len(m.st.Standings) > 0
	f := m.fetch
	return func() tea.Msg {
		if have && !force {
			return standingsMsg{}
		}
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return f.Standings(ctx)
	}
}

func (m App) loadGameOdds(g model.Game) tea.Cmd {
	f := m.fetch
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return f.GameOdds(ctx, g)
	}
}

func (m App) loadHistory(gameID, clobID string) tea.Cmd {
	f := m.fetch
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return f.History(ctx, gameID, clobID)
	}
}

func (m App) View() string {
	if m.page == pageDetail {
		return m.detailView()
	}
	return m.mapView()
}

// Deps wires the dashboard to the rest of the CLI.
type Deps struct {
	Config *config.Config
	Client *api.Client
	Cache  cache.Cache
	Store  *store.Store
	Theme  theme.Theme
}

// Run starts the dashboard and blocks until it exits. Pollers start
// after the program exists and are torn down with it; cancelling ctx
// shuts down both.
func Run(ctx context.Context, d Deps) error {
	f := newFetcher(d.Client, d.Cache, d.Store, d.Config.Cache.TTL(), nil)

	var prog *tea.Program
	send := func(msg tea.Msg) {
		if prog != nil {
			prog.Send(msg)
		}
	}
	ps := newPollerSet(d.Config.Poll, f, send)

	app := newApp(d.Theme, f, ps, nil)
	prog = tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	ps.Start(ctx)
	defer ps.Stop()

	_, err := prog.Run()
	return err
}
