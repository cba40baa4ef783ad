package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"h2_simulator/internal/plant"
)

// Report renders a full simulation run: polarization curve, the two day
// profiles and the metric row. This is the one-shot CLI output and the body
// of the interactive view.
func Report(res *plant.Result, summary plant.Summary) string {
	polarization := LineChart{
		Title:  "Polarization Curve",
		XLabel: "i (A/cm²)",
		YLabel: "V",
		Width:  64,
		Height: 10,
		Color:  lipgloss.Color("#EF4444"),
	}.Render(res.Polarization.CurrentDensity, res.Polarization.Voltage)

	sun := LineChart{
		Title:  "Solar Power (kW)",
		XLabel: "hour",
		YLabel: "kW",
		Width:  64,
		Height: 8,
		Color:  lipgloss.Color("#F59E0B"),
	}.Render(res.Hours, res.SolarKW)

	h2 := LineChart{
		Title:  "H2 Production (g/hr)",
		XLabel: "hour",
		YLabel: "g/hr",
		Width:  64,
		Height: 8,
		Color:  lipgloss.Color("#22D3EE"),
	}.Render(res.Hours, res.H2GramsPerHour)

	var b strings.Builder
	b.WriteString(polarization)
	b.WriteString("\n\n")
	b.WriteString(sun)
	b.WriteString("\n\n")
	b.WriteString(h2)
	b.WriteString("\n\n")
	b.WriteString(SummaryRow(summary))
	return b.String()
}
