package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/courtside/courtside/src/model"
)

// futuresShown caps how many season-long markets the panel lists.
const futuresShown = 3

// standingsPanel renders both conferences, side by side when the full
// terminal width is available, stacked in sidebar form otherwise.
func (m App) standingsPanel(full bool) string {
	if len(m.st.Standings) == 0 {
		return m.styles.panel.Render(m.styles.muted.Render("standings unavailable"))
	}

	east, west := model.ByConference(m.st.Standings)
	eastT := m.conferenceTable("EASTERN", east)
	westT := m.conferenceTable("WESTERN", west)

	var body string
	if full {
		body = lipgloss.JoinHorizontal(lipgloss.Top, eastT, "   ", westT)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, eastT, "", westT)
	}

	if fut := m.futuresPanel(); fut != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", fut)
	}
	return m.styles.panel.Render(body)
}

func (m App) conferenceTable(name string, rows []model.Standing) string {
	var sb strings.Builder
	sb.WriteString(m.styles.panelHead.Render(name))
	sb.WriteString("\n")
	sb.WriteString(m.styles.colHead.Render(
		fmt.Sprintf("%2s %-4s %7s %5s %5s", "#", "", "W-L", "PCT", "GB")))
	sb.WriteString("\n")

	for _, s := range rows {
		row := fmt.Sprintf("%2d %-4s %3d-%-3d %5s %5s",
			s.Rank, s.Tricode, s.Wins, s.Losses, fmtPct(s.WinPct), fmtGamesBack(s.GamesBack))
		if s.Rank == 1 {
			sb.WriteString(m.styles.accent.Render(row))
		} else {
			sb.WriteString(m.styles.text.Render(row))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// futuresPanel lists the top season-long markets with their leading
// outcome.
func (m App) futuresPanel() string {
	if len(m.props) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.styles.panelHead.Render("FUTURES"))
	sb.WriteString("\n")

	props := m.props
	if len(props) > futuresShown {
		props = props[:futuresShown]
	}
	for _, p := range props {
		line := m.styles.text.Render(truncateName(p.Question, 34))
		if lead, ok := topOutcome(p); ok {
			line += m.styles.muted.Render(" → ") +
				m.styles.accent.Render(lead.Name+" "+fmtProb(lead.Price))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func topOutcome(p model.Prop) (model.PropOutcome, bool) {
	if len(p.Outcomes) == 0 {
		return model.PropOutcome{}, false
	}
	best := p.Outcomes[0]
	for _, o := range p.Outcomes[1:] {
		if o.Price.GreaterThan(best.Price) {
			best = o
		}
	}
	return best, true
}
