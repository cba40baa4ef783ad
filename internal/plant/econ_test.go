package plant

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseEcon = EconParams{
	ElectricityPricePerKWh: 0.05,
	CapexPerKW:             1000,
}

func TestTrapezoid(t *testing.T) {
	// Straight line y = x over [0, 4] integrates to 8.
	x := []float64{0, 1, 2, 3, 4}
	assert.InDelta(t, 8, Trapezoid(x, x), 1e-12)

	// Degenerate inputs integrate to zero.
	assert.Zero(t, Trapezoid(nil, nil))
	assert.Zero(t, Trapezoid([]float64{1}, []float64{1}))
	assert.Zero(t, Trapezoid([]float64{1, 2}, []float64{1}))
}

func TestEconomics_BaseScenario(t *testing.T) {
	res, err := Simulate(baseInputs)
	require.NoError(t, err)

	s := Economics(res, baseInputs, baseEcon)

	// Daily mass equals the trapezoidal integral of the rate curve.
	wantDaily := Trapezoid(res.Hours, res.H2GramsPerHour) / 1000
	assert.InDelta(t, wantDaily, s.DailyKg, 1e-9)
	assert.Positive(t, s.DailyKg)
	assert.InDelta(t, s.DailyKg*365, s.AnnualKg, 1e-9)

	// 100 kW * 2000 h * 0.05 $/kWh
	assert.InDelta(t, 10000, s.AnnualOpexUSD, 1e-9)
	// 100 kW * 1000 $/kW
	assert.InDelta(t, 100000, s.CapexUSD, 1e-9)

	wantLCOH := (s.CapexUSD + s.AnnualOpexUSD*10) / (s.AnnualKg * 10)
	assert.InDelta(t, wantLCOH, s.LCOHPerKg, 1e-9)

	// 1.25 / V(1.0 A/cm²) — well below 100% for a real curve.
	assert.Greater(t, s.EfficiencyPct, 50.0)
	assert.Less(t, s.EfficiencyPct, 100.0)
}

func TestEconomics_ZeroProductionGuard(t *testing.T) {
	in := baseInputs
	in.SolarCapacityKW = 0
	res, err := Simulate(in)
	require.NoError(t, err)

	s := Economics(res, in, baseEcon)
	assert.Zero(t, s.DailyKg)
	assert.Zero(t, s.AnnualKg)
	assert.True(t, math.IsInf(s.LCOHPerKg, 1), "LCOH must be +Inf with no production")
}

func TestEconParams_Validate(t *testing.T) {
	assert.NoError(t, baseEcon.Validate())
	assert.ErrorIs(t, EconParams{ElectricityPricePerKWh: -0.01}.Validate(), ErrNegativePrice)
	assert.ErrorIs(t, EconParams{CapexPerKW: -1}.Validate(), ErrNegativePrice)
}
