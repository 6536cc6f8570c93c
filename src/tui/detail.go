package tui

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/courtside/courtside/src/flavor"
	"github.com/courtside/courtside/src/model"
)

const detailHelp = "↑↓ scroll · esc back · q quit"

// playTail caps how many recent play-by-play events the detail page
// shows.
const playTail = 12

func (m App) detailView() string {
	g, ok := m.st.SelectedGame()
	if !ok {
		return m.styles.muted.Render("no game selected") + "\n" +
			m.styles.help.Render(detailHelp)
	}

	var sb strings.Builder

	sb.WriteString(m.styles.title.Render(g.Matchup()))
	sb.WriteString("  ")
	sb.WriteString(m.detailBadge(g))
	sb.WriteString("\n")

	if line := m.flavorLine(g); line != "" {
		sb.WriteString(m.styles.flavor.Render(line))
		sb.WriteString("\n")
	}

	sb.WriteString(m.marketLine(g))
	sb.WriteString("\n\n")

	if m.detail.loading {
		sb.WriteString(m.styles.muted.Render("loading box score ..."))
	} else {
		sb.WriteString(m.detail.viewport.View())
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.help.Render(detailHelp))
	return sb.String()
}

func (m App) detailBadge(g model.Game) string {
	label := statusLabel(g)
	switch {
	case g.IsCrunchTime() && m.blinkOn:
		return m.styles.err.Reverse(true).Render(label + " · CRUNCH")
	case g.IsCrunchTime():
		return m.styles.err.Render(label + " · CRUNCH")
	case g.IsLive():
		return m.styles.err.Render(label)
	case g.IsFinal():
		return m.styles.accent.Render(label)
	default:
		return m.styles.muted.Render(label)
	}
}

// flavorLine picks the victory/defeat pair for a final, seeded by the
// game id so reopening the page keeps the same line.
func (m App) flavorLine(g model.Game) string {
	if !g.IsFinal() {
		return ""
	}
	winner, loser := g.HomeTeam, g.AwayTeam
	if g.AwayTeam.Score > g.HomeTeam.Score {
		winner, loser = g.AwayTeam, g.HomeTeam
	}
	p := flavor.NewPicker(seedFor(g.ID))
	return p.Victory(winner.Name) + " " + p.Defeat(loser.Name)
}

func seedFor(id string) int64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	return int64(h.Sum64())
}

// marketLine prefers the directly-resolved line from the detail load,
// falling back to the odds book (which itself falls back to the
// next-day key).
func (m App) marketLine(g model.Game) string {
	o := m.detail.odds
	if o == nil {
		if fromBook, ok := m.st.Odds.Lookup(g); ok {
			o = &fromBook
		}
	}
	if o == nil {
		return m.styles.muted.Render("market: no line")
	}

	line := m.styles.prob.Render(fmt.Sprintf("market: %s %s (%s) · %s %s (%s)",
		g.AwayTeam.Tricode, fmtProb(o.AwayProb), fmtPrice(o.AwayProb),
		g.HomeTeam.Tricode, fmtProb(o.HomeProb), fmtPrice(o.HomeProb),
	)) + " " + m.styles.volume.Render("vol "+fmtVolume(o.Volume))

	if spark := sparkline(m.detail.history, 24); spark != "" {
		line += "  " + m.styles.accent.Render(spark) + m.styles.muted.Render(" 24h")
	}
	return line
}

// detailContent builds the scrollable body: both box score tables, the
// play-by-play tail, and sampled fan posts.
func (m App) detailContent() string {
	var sb strings.Builder

	if m.detail.box != nil {
		sb.WriteString(m.boxTable(m.detail.box.Away))
		sb.WriteString("\n")
		sb.WriteString(m.boxTable(m.detail.box.Home))
	} else if m.detail.err != nil {
		sb.WriteString(m.styles.muted.Render("box score unavailable"))
		sb.WriteString("\n")
	}

	if len(m.detail.plays) > 0 {
		sb.WriteString("\n")
		sb.WriteString(m.styles.panelHead.Render("LAST PLAYS"))
		sb.WriteString("\n")
		sb.WriteString(m.playsTail())
	}

	g, _ := m.st.SelectedGame()
	if posts := m.posts[g.ID]; len(posts) > 0 {
		sb.WriteString("\n")
		sb.WriteString(m.styles.panelHead.Render("COURTSIDE CHATTER"))
		if h := m.st.Heat[g.ID]; h.Trending {
			sb.WriteString(m.styles.err.Render(" ↑ trending"))
		}
		sb.WriteString("\n")
		sb.WriteString(m.postsList(posts))
	}

	return sb.String()
}

func (m App) boxTable(tb model.TeamBox) string {
	var sb strings.Builder
	sb.WriteString(m.styles.panelHead.Render(tb.Tricode))
	sb.WriteString("\n")
	sb.WriteString(m.styles.colHead.Render(
		fmt.Sprintf("  %-22s %5s %4s %4s %4s %4s %4s", "PLAYER", "MIN", "PTS", "REB", "AST", "STL", "BLK")))
	sb.WriteString("\n")

	if len(tb.Players) == 0 {
		sb.WriteString(m.styles.muted.Render("  no player stats yet"))
		sb.WriteString("\n")
		return sb.String()
	}

	top, _ := tb.TopScorer()
	for _, p := range tb.Players {
		mark := " "
		if p.OnCourt {
			mark = "•"
		}
		row := fmt.Sprintf("%s %-22s %5s %4d %4d %4d %4d %4d",
			mark, truncateName(p.Name, 22), p.Minutes, p.Points, p.Rebounds, p.Assists, p.Steals, p.Blocks)
		if p.Name == top.Name && p.Points > 0 {
			sb.WriteString(m.styles.accent.Render(row))
		} else {
			sb.WriteString(m.styles.text.Render(row))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func truncateName(name string, n int) string {
	r := []rune(name)
	if len(r) <= n {
		return name
	}
	return string(r[:n-1]) + "…"
}

func (m App) playsTail() string {
	plays := m.detail.plays
	if len(plays) > playTail {
		plays = plays[len(plays)-playTail:]
	}
	var sb strings.Builder
	for _, p := range plays {
		sb.WriteString(m.styles.muted.Render(fmt.Sprintf("  Q%d %s", p.Period, fmtClock(p.Clock))))
		sb.WriteString(m.styles.text.Render(fmt.Sprintf("  %-4s %s", p.Tricode, p.Description)))
		sb.WriteString(m.styles.muted.Render(fmt.Sprintf("  %d-%d", p.AwayScore, p.HomeScore)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m App) postsList(posts []model.SocialPost) string {
	var sb strings.Builder
	for _, p := range posts {
		sb.WriteString(m.styles.accent.Render("  @" + p.User))
		sb.WriteString(m.styles.muted.Render(fmt.Sprintf(" (%d) ", p.Likes)))
		sb.WriteString(m.styles.text.Render(p.Text))
		sb.WriteString("\n")
	}
	return sb.String()
}
