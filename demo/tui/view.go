package tui

import (
	"fmt"
	"strings"
)

const maxTableRows = 15

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("🔎 Keyword Discovery Demo"))
	b.WriteString("\n\n")

	// Current state
	b.WriteString(m.getStateText())
	b.WriteString("\n\n")

	// Statistics
	stats := fmt.Sprintf("📊 Candidates loaded: %d (business type: %s)", len(m.Candidates), m.BusinessType)
	b.WriteString(InfoStyle.Render(stats))
	b.WriteString("\n")

	if m.State == StateComplete {
		stats := fmt.Sprintf("   Processed: %d | Ranked: %d", m.Processed, len(m.Ranked))
		b.WriteString(InfoStyle.Render(stats))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Logs
	if len(m.Logs) > 0 {
		b.WriteString(InfoStyle.Render("📝 Recent Activity:"))
		b.WriteString("\n")
		for _, logMsg := range m.Logs {
			b.WriteString(InfoStyle.Render("   " + logMsg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Results
	if m.State == StateComplete && len(m.Ranked) > 0 {
		b.WriteString(BoxStyle.Render(m.formatRankedTable()))
		b.WriteString("\n\n")
	}

	// Help text
	if m.State == StateIdle {
		b.WriteString(InfoStyle.Render("Press 'd' to run pipeline | Press 'q' or Ctrl+C to quit"))
	} else if m.State == StateComplete {
		b.WriteString(InfoStyle.Render("Press 'd' to run again | Press 'q' or Ctrl+C to exit"))
	} else {
		b.WriteString(InfoStyle.Render("Press 'q' or Ctrl+C to quit"))
	}

	return b.String()
}

// formatRankedTable renders the top ranked keywords as a fixed-width table.
func (m Model) formatRankedTable() string {
	var b strings.Builder

	b.WriteString(HighlightStyle.Render("Top Ranked Keywords"))
	b.WriteString("\n\n")

	header := fmt.Sprintf("%-32s %8s %6s %5s %10s %9s", "KEYWORD", "VOLUME", "COMP", "DIFF", "MATCH", "RELEVANCE")
	b.WriteString(TableHeaderStyle.Render(header))
	b.WriteString("\n")

	rows := m.Ranked
	if len(rows) > maxTableRows {
		rows = rows[:maxTableRows]
	}
	for _, r := range rows {
		text := r.Text
		if len(text) > 30 {
			text = text[:27] + "..."
		}
		b.WriteString(fmt.Sprintf("%-32s %8d %6.2f %5d %10s %9.4f\n",
			text, r.SearchVolume, r.Competition, r.DifficultyScore, r.PreliminaryMatchType, r.RelevanceScore))
	}

	if len(m.Ranked) > maxTableRows {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("... and %d more", len(m.Ranked)-maxTableRows)))
		b.WriteString("\n")
	}

	return b.String()
}
