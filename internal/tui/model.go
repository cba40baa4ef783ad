package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"h2_simulator/internal/plant"
	"h2_simulator/internal/render"
	"h2_simulator/internal/scenario"
)

// param is one adjustable scalar with its display format and bounds.
type param struct {
	name string
	unit string
	step float64
	min  float64
	max  float64
	get  func(*Model) float64
	set  func(*Model, float64)
}

var params = []param{
	{
		name: "Operating Temperature", unit: "°C", step: 5, min: 20, max: 90,
		get: func(m *Model) float64 { return m.inputs.TemperatureC },
		set: func(m *Model, v float64) { m.inputs.TemperatureC = v },
	},
	{
		name: "Membrane Thickness", unit: "µm", step: 5, min: 50, max: 200,
		get: func(m *Model) float64 { return m.inputs.MembraneThicknessCm * 1e4 },
		set: func(m *Model, v float64) { m.inputs.MembraneThicknessCm = v / 1e4 },
	},
	{
		name: "Solar Array Capacity", unit: "kW", step: 10, min: 0, max: 10000,
		get: func(m *Model) float64 { return m.inputs.SolarCapacityKW },
		set: func(m *Model, v float64) { m.inputs.SolarCapacityKW = v },
	},
	{
		name: "Stack Size", unit: "cells", step: 5, min: 1, max: 1000,
		get: func(m *Model) float64 { return float64(m.inputs.CellCount) },
		set: func(m *Model, v float64) { m.inputs.CellCount = int(v) },
	},
	{
		name: "Electricity Price", unit: "$/kWh", step: 0.01, min: 0.01, max: 0.15,
		get: func(m *Model) float64 { return m.econ.ElectricityPricePerKWh },
		set: func(m *Model, v float64) { m.econ.ElectricityPricePerKWh = v },
	},
	{
		name: "System CAPEX", unit: "$/kW", step: 100, min: 500, max: 2500,
		get: func(m *Model) float64 { return m.econ.CapexPerKW },
		set: func(m *Model, v float64) { m.econ.CapexPerKW = v },
	},
}

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9FAFB")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)

// Model is the interactive parameter panel: arrow keys select and adjust a
// parameter, every change recomputes the plant immediately.
type Model struct {
	inputs plant.Inputs
	econ   plant.EconParams

	cursor  int
	result  *plant.Result
	summary plant.Summary
	err     error
}

func NewModel(s scenario.Scenario) Model {
	m := Model{
		inputs: s.Inputs(),
		econ:   s.EconParams(),
	}
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(params)-1 {
			m.cursor++
		}

	case "left", "h":
		m.adjust(-1)

	case "right", "l":
		m.adjust(1)
	}

	return m, nil
}

// adjust moves the selected parameter one step and recomputes, clamping to
// the parameter's bounds.
func (m *Model) adjust(direction float64) {
	p := params[m.cursor]
	v := p.get(m) + direction*p.step
	if v < p.min {
		v = p.min
	}
	if v > p.max {
		v = p.max
	}
	p.set(m, v)
	m.recompute()
}

func (m *Model) recompute() {
	res, err := plant.Simulate(m.inputs)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.result = res
	m.summary = plant.Economics(res, m.inputs, m.econ)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(cursorStyle.Render("Solar-to-Hydrogen Plant"))
	b.WriteString(dimStyle.Render("   ↑/↓ select · ←/→ adjust · q quit"))
	b.WriteString("\n\n")

	for k, p := range params {
		marker := "  "
		line := fmt.Sprintf("%-22s %10s", p.name, formatParam(p.get(&m), p.unit))
		if k == m.cursor {
			marker = cursorStyle.Render("▸ ")
			line = selectedStyle.Render(line)
		} else {
			line = dimStyle.Render(line)
		}
		b.WriteString(marker + line + "\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(render.Report(m.result, m.summary))
	b.WriteString("\n")
	return b.String()
}

func formatParam(v float64, unit string) string {
	if v == float64(int(v)) && unit != "$/kWh" {
		return fmt.Sprintf("%.0f %s", v, unit)
	}
	return fmt.Sprintf("%.2f %s", v, unit)
}

// Run starts the interactive session.
func Run(s scenario.Scenario) error {
	_, err := tea.NewProgram(NewModel(s), tea.WithAltScreen()).Run()
	return err
}
