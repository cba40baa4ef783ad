package render

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"

	"h2_simulator/internal/plant"
)

// MetricBlockConfig holds styling for a metric panel.
type MetricBlockConfig struct {
	Width       int
	BorderColor lipgloss.Color
	TitleColor  lipgloss.Color
	ValueColor  lipgloss.Color
}

// DefaultMetricBlockConfig returns sensible defaults
func DefaultMetricBlockConfig() MetricBlockConfig {
	return MetricBlockConfig{
		Width:       26,
		BorderColor: lipgloss.Color("#6B7280"),
		TitleColor:  lipgloss.Color("#7C3AED"),
		ValueColor:  lipgloss.Color("#F9FAFB"),
	}
}

// MetricBlock renders a bordered panel with a title, a headline value and a
// one-line subtitle.
func MetricBlock(title, value, subtitle string, config MetricBlockConfig) string {
	if config.Width <= 0 {
		config.Width = 26
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(config.BorderColor).
		Width(config.Width).
		Padding(0, 1)

	titleLine := lipgloss.NewStyle().Foreground(config.TitleColor).Render(title)
	valueLine := lipgloss.NewStyle().Foreground(config.ValueColor).Bold(true).Render(value)
	subtitleLine := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Render(subtitle)

	return box.Render(titleLine + "\n" + valueLine + "\n" + subtitleLine)
}

// SummaryRow renders the three headline metrics side by side: daily
// production, system efficiency, and levelized cost of hydrogen.
func SummaryRow(s plant.Summary) string {
	cfg := DefaultMetricBlockConfig()

	daily := MetricBlock("Daily Production",
		fmt.Sprintf("%.2f kg/day", s.DailyKg),
		fmt.Sprintf("%.0f kg/year", s.AnnualKg), cfg)

	efficiency := MetricBlock("System Efficiency",
		fmt.Sprintf("%.1f%%", s.EfficiencyPct),
		"vs 1.25 V thermoneutral", cfg)

	lcoh := MetricBlock("LCOH",
		FormatLCOH(s.LCOHPerKg),
		"10-year amortization", cfg)

	return lipgloss.JoinHorizontal(lipgloss.Top, daily, " ", efficiency, " ", lcoh)
}

// FormatLCOH renders the levelized cost, or "n/a" when the plant produces
// nothing and the cost is undefined.
func FormatLCOH(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("$%.2f /kg", v)
}
