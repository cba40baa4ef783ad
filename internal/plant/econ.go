package plant

import (
	"errors"
	"math"
)

// Economic model constants.
const (
	// fullLoadHours is the assumed annual full-load-equivalent solar hours.
	fullLoadHours = 2000
	// amortizationYears is the undiscounted project lifetime for LCOH.
	amortizationYears = 10
	// thermoneutralVoltage (V) is the reference for the efficiency metric.
	thermoneutralVoltage = 1.25
	// efficiencyRefCurrent (A/cm²) is where the curve is sampled for efficiency.
	efficiencyRefCurrent = 1.0
)

var ErrNegativePrice = errors.New("economic parameters must not be negative")

// EconParams are the two collaborator-supplied economic scalars.
type EconParams struct {
	ElectricityPricePerKWh float64
	CapexPerKW             float64
}

func (p EconParams) Validate() error {
	if p.ElectricityPricePerKWh < 0 || p.CapexPerKW < 0 {
		return ErrNegativePrice
	}
	return nil
}

// Summary holds the derived economic metrics for one simulation result.
// LCOHPerKg is +Inf when the plant produces no hydrogen.
type Summary struct {
	DailyKg       float64
	AnnualKg      float64
	CapexUSD      float64
	AnnualOpexUSD float64
	LCOHPerKg     float64
	EfficiencyPct float64
}

// Economics derives the summary metrics from a simulation result: trapezoidal
// daily hydrogen mass, a flat 365-day year, and a 10-year undiscounted
// amortization for the levelized cost.
func Economics(res *Result, in Inputs, p EconParams) Summary {
	dailyKg := Trapezoid(res.Hours, res.H2GramsPerHour) / 1000
	annualKg := dailyKg * 365

	opex := in.SolarCapacityKW * fullLoadHours * p.ElectricityPricePerKWh
	capex := in.SolarCapacityKW * p.CapexPerKW

	lcoh := math.Inf(1)
	if annualKg > 0 {
		lcoh = (capex + opex*amortizationYears) / (annualKg * amortizationYears)
	}

	efficiency := 0.0
	if v := res.Polarization.VoltageAt(efficiencyRefCurrent); v > 0 {
		efficiency = thermoneutralVoltage / v * 100
	}

	return Summary{
		DailyKg:       dailyKg,
		AnnualKg:      annualKg,
		CapexUSD:      capex,
		AnnualOpexUSD: opex,
		LCOHPerKg:     lcoh,
		EfficiencyPct: efficiency,
	}
}

// Trapezoid integrates y over x using the trapezoidal rule. The grids must be
// the same length; short or empty inputs integrate to zero.
func Trapezoid(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0
	}
	var sum float64
	for k := 1; k < len(x); k++ {
		sum += (x[k] - x[k-1]) * (y[k] + y[k-1]) / 2
	}
	return sum
}
