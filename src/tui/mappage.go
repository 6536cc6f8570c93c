package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/courtside/courtside/src/layout"
	"github.com/courtside/courtside/src/mapgrid"
	"github.com/courtside/courtside/src/model"
	"github.com/courtside/courtside/src/render"
)

const mapHelp = "↑↓←→/hjkl move · enter detail · / filter · tab standings · [ ] date · t today · r refresh · o odds · q quit"

func (m App) mapView() string {
	var sb strings.Builder

	sb.WriteString(m.headerLine())
	sb.WriteString("\n")

	if m.width > 0 && m.width < mapgrid.Width {
		sb.WriteString(m.styles.muted.Render(
			fmt.Sprintf("terminal too narrow: %d columns, the map needs %d", m.width, mapgrid.Width)))
		sb.WriteString("\n")
		sb.WriteString(m.styles.help.Render(mapHelp))
		return sb.String()
	}

	body := m.mapBody()
	if m.showStandings {
		panel := m.standingsPanel(!m.mode.ShowSidebar())
		if m.mode.ShowSidebar() {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", panel)
		} else {
			body = panel
		}
	}
	sb.WriteString(body)
	sb.WriteString("\n")

	sb.WriteString(m.statusLine())
	sb.WriteString("\n")
	if line := m.filterLine(); line != "" {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString(m.styles.help.Render(mapHelp))
	return sb.String()
}

// headerLine spreads title, date, and connection state across the row.
func (m App) headerLine() string {
	left := m.styles.title.Render("COURTSIDE") + "  " + m.styles.header.Render(m.st.DateString())
	if m.st.DateString() == m.now().Format("2006-01-02") {
		left += m.styles.muted.Render(" · today")
	}

	right := m.connBadge()

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m App) connBadge() string {
	switch {
	case m.connected:
		return m.styles.connected.Render("● connected")
	case m.stale:
		age := m.now().Sub(m.staleAt).Round(time.Minute)
		return m.styles.stale.Render(fmt.Sprintf("○ offline · snapshot %s old", age))
	default:
		return m.styles.offline.Render("○ offline")
	}
}

// mapBody draws the markers over the embedded map and colors the rows.
func (m App) mapBody() string {
	lines := mapgrid.Lines()
	placed, positions := layout.PlaceMarkers(lines, m.st.Games, m.st.Selected, m.st.Filter, m.st.Heat)
	styled := render.Lines(placed, positions, m.st.Games, render.Options{
		Theme:   m.theme,
		BlinkOn: m.blinkOn,
	})
	return strings.Join(styled, "\n")
}

// statusLine describes the selected game, with the odds readout when
// toggled on.
func (m App) statusLine() string {
	g, ok := m.st.SelectedGame()
	if !ok {
		if m.loading {
			return m.styles.muted.Render("fetching " + m.st.DateString() + " ...")
		}
		return m.styles.muted.Render("no games on " + m.st.DateString())
	}

	parts := []string{
		m.styles.accent.Render(g.Matchup()),
		m.styles.status.Render(statusLabel(g)),
	}
	if !g.IsScheduled() {
		parts = append(parts, m.styles.status.Render(
			fmt.Sprintf("%d-%d", g.AwayTeam.Score, g.HomeTeam.Score)))
	}
	if g.IsCrunchTime() {
		badge := m.styles.err.Render("CRUNCH TIME")
		if m.blinkOn {
			badge = m.styles.err.Reverse(true).Render("CRUNCH TIME")
		}
		parts = append(parts, badge)
	}
	if m.st.ShowOdds {
		parts = append(parts, m.oddsReadout(g))
	}
	return strings.Join(parts, "  ")
}

// oddsReadout renders both sides' probability and decimal price plus
// volume for the status line.
func (m App) oddsReadout(g model.Game) string {
	o, ok := m.st.Odds.Lookup(g)
	if !ok {
		return m.styles.muted.Render("no line")
	}
	return m.styles.prob.Render(fmt.Sprintf("%s %s (%s) · %s %s (%s)",
		g.AwayTeam.Tricode, fmtProb(o.AwayProb), fmtPrice(o.AwayProb),
		g.HomeTeam.Tricode, fmtProb(o.HomeProb), fmtPrice(o.HomeProb),
	)) + " " + m.styles.volume.Render("vol "+fmtVolume(o.Volume))
}

// filterLine shows the live filter input while typing, or the applied
// filter with its match count.
func (m App) filterLine() string {
	if m.filtering {
		return m.filterInput.View()
	}
	if m.st.Filter == "" {
		return ""
	}
	n := m.st.MatchCount()
	word := "matches"
	if n == 1 {
		word = "match"
	}
	return m.styles.filter.Render(fmt.Sprintf("»%s«", m.st.Filter)) +
		m.styles.muted.Render(fmt.Sprintf("  %d %s · esc clears", n, word))
}
