package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
)

// LineChart plots ys against xs on a width x height character grid with a
// labelled frame. Both slices must be the same length.
type LineChart struct {
	Title  string
	XLabel string
	YLabel string
	Width  int
	Height int
	Color  lipgloss.Color
}

// Render draws the chart. Degenerate input (empty series, mismatched lengths)
// renders an empty frame rather than panicking.
func (c LineChart) Render(xs, ys []float64) string {
	width, height := c.Width, c.Height
	if width < 16 {
		width = 60
	}
	if height < 4 {
		height = 12
	}

	grid := make([][]rune, height)
	for row := range grid {
		grid[row] = make([]rune, width)
		for col := range grid[row] {
			grid[row][col] = ' '
		}
	}

	xMin, xMax := seriesRange(xs)
	yMin, yMax := seriesRange(ys)
	if len(xs) == len(ys) && len(xs) > 0 && xMax > xMin {
		ySpan := yMax - yMin
		if ySpan == 0 {
			ySpan = 1
		}
		for k := range xs {
			col := int((xs[k] - xMin) / (xMax - xMin) * float64(width-1))
			row := height - 1 - int((ys[k]-yMin)/ySpan*float64(height-1))
			if col >= 0 && col < width && row >= 0 && row < height {
				grid[row][col] = '•'
			}
		}
	}

	dot := lipgloss.NewStyle().Foreground(c.Color)

	var b strings.Builder
	if c.Title != "" {
		b.WriteString(titleStyle.Render(c.Title))
		b.WriteByte('\n')
	}
	b.WriteString(axisStyle.Render(fmt.Sprintf("%s  %s .. %s", c.YLabel, formatTick(yMax), formatTick(yMin))))
	b.WriteByte('\n')
	for _, row := range grid {
		line := string(row)
		b.WriteString(axisStyle.Render("│"))
		b.WriteString(dot.Render(line))
		b.WriteByte('\n')
	}
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", width)))
	b.WriteByte('\n')
	b.WriteString(axisStyle.Render(fmt.Sprintf(" %s  %s .. %s", c.XLabel, formatTick(xMin), formatTick(xMax))))
	return b.String()
}

func seriesRange(v []float64) (lo, hi float64) {
	if len(v) == 0 {
		return 0, 0
	}
	lo, hi = v[0], v[0]
	for _, x := range v[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi
}

func formatTick(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e6 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.3g", v)
}
