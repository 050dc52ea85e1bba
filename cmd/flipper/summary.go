package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flipper/internal/game"
)

var (
	summaryBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
	summaryLabel = lipgloss.NewStyle().Bold(true).Width(10)
)

// renderSummary formats the end-of-run statistics.
func renderSummary(kind string, seed uint64, s game.Stats) string {
	rows := [][2]string{
		{"backend", kind},
		{"seed", fmt.Sprint(seed)},
		{"frames", fmt.Sprint(s.Frames)},
		{"splashes", fmt.Sprint(s.Crossings)},
		{"fps", fmt.Sprintf("%.1f", s.FPS)},
	}
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(summaryLabel.Render(r[0]))
		b.WriteString(r[1])
	}
	return summaryBox.Render(b.String())
}
