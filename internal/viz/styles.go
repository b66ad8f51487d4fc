package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	summaryBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))
)

// RunSummary renders a styled box with the headline numbers of a
// finished evolution run.
func RunSummary(system string, dim, steps int, traceDrift float64, metrics map[string]float64) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(system))
	b.WriteString("\n")
	b.WriteString(metricLine("dimension", fmt.Sprintf("%d", dim)))
	b.WriteString(metricLine("steps", fmt.Sprintf("%d", steps)))

	driftLine := fmt.Sprintf("%.3g", traceDrift)
	if traceDrift > 1e-6 {
		driftLine = warnStyle.Render(driftLine + " (!)")
	}
	b.WriteString(metricLine("trace drift", driftLine))

	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString(metricLine(name, fmt.Sprintf("%.6g", metrics[name])))
	}

	return summaryBox.Render(strings.TrimRight(b.String(), "\n"))
}

func metricLine(label, value string) string {
	return MetricLabel.Render(fmt.Sprintf("%-12s", label)) + " " + MetricValue.Render(value) + "\n"
}
