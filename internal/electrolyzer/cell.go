package electrolyzer

import (
	"errors"
	"math"
)

// Physical constants used by the cell model.
const (
	// GasConstant is the universal gas constant in J/(mol*K).
	GasConstant = 8.314
	// Faraday is the Faraday constant in C/mol.
	Faraday = 96485.0
	// H2MolarMass is the molar mass of hydrogen in g/mol.
	H2MolarMass = 2.016

	// referenceExchangeCurrent is the exchange current density i0 in A/cm².
	referenceExchangeCurrent = 1e-3
	// chargeTransferCoeff is the symmetry factor alpha in the Tafel term.
	chargeTransferCoeff = 0.5
	// electronsPerMol is the number of electrons transferred per H2 molecule.
	electronsPerMol = 2

	absoluteZeroC = -273.15
)

// Current-density sweep bounds, A/cm².
const (
	GridPoints = 50
	gridMin    = 0.01
	gridMax    = 2.0
)

var (
	ErrTemperatureOutOfRange = errors.New("temperature must be above absolute zero and below 100°C")
	ErrMembraneTooThin       = errors.New("membrane thickness must be positive")
)

// CellParams describes a single PEM electrolysis cell.
type CellParams struct {
	TemperatureC        float64
	MembraneThicknessCm float64
}

func (p CellParams) Validate() error {
	if p.TemperatureC <= absoluteZeroC || p.TemperatureC > 100 {
		return ErrTemperatureOutOfRange
	}
	if p.MembraneThicknessCm <= 0 {
		return ErrMembraneTooThin
	}
	return nil
}

// kelvin converts Celsius to absolute temperature.
func kelvin(tempC float64) float64 {
	return tempC + 273.15
}

// ReversibleVoltage returns the thermodynamic minimum cell voltage in volts,
// using a linear temperature correction around standard conditions (298.15 K).
func ReversibleVoltage(tempC float64) float64 {
	return 1.229 - 0.0009*(kelvin(tempC)-298.15)
}

// Conductivity returns the membrane ionic conductivity in S/cm.
func Conductivity(tempC float64) float64 {
	return (0.005139*(kelvin(tempC)/303) - 0.00326) * 10
}

// ActivationOverpotential returns the Tafel-type kinetic loss in volts at
// current density i (A/cm²). The simplified model goes negative below the
// reference exchange current density (1e-3 A/cm²); the sweep grid starts well
// above it, so the value is positive everywhere on the curve.
func ActivationOverpotential(tempC, i float64) float64 {
	return (GasConstant * kelvin(tempC) / (chargeTransferCoeff * electronsPerMol * Faraday)) *
		math.Log(i/referenceExchangeCurrent)
}

// OhmicOverpotential returns the resistive loss in volts at current density i
// (A/cm²) through a membrane of the given thickness (cm).
func OhmicOverpotential(tempC, thicknessCm, i float64) float64 {
	return i * thicknessCm / Conductivity(tempC)
}

// CurrentDensityGrid returns the fixed 50-point sweep from 0.01 to 2.0 A/cm².
// The grid is the same for every simulation regardless of cell parameters.
func CurrentDensityGrid() []float64 {
	grid := make([]float64, GridPoints)
	step := (gridMax - gridMin) / float64(GridPoints-1)
	for k := range grid {
		grid[k] = gridMin + float64(k)*step
	}
	// Pin the endpoint to avoid accumulated rounding.
	grid[GridPoints-1] = gridMax
	return grid
}

// PolarizationCurve is the voltage response of a cell over the sweep grid.
type PolarizationCurve struct {
	CurrentDensity []float64 // A/cm²
	Voltage        []float64 // V, same length as CurrentDensity
}

// Polarization computes the cell voltage over the fixed current-density sweep:
// reversible voltage plus activation and ohmic overpotentials.
func Polarization(p CellParams) (*PolarizationCurve, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	grid := CurrentDensityGrid()
	vRev := ReversibleVoltage(p.TemperatureC)

	volts := make([]float64, len(grid))
	for k, i := range grid {
		volts[k] = vRev +
			ActivationOverpotential(p.TemperatureC, i) +
			OhmicOverpotential(p.TemperatureC, p.MembraneThicknessCm, i)
	}

	return &PolarizationCurve{CurrentDensity: grid, Voltage: volts}, nil
}

// VoltageAt returns the linearly interpolated cell voltage at current density i.
// Outside the sweep range the nearest endpoint voltage is returned.
func (c *PolarizationCurve) VoltageAt(i float64) float64 {
	n := len(c.CurrentDensity)
	if n == 0 {
		return 0
	}
	if i <= c.CurrentDensity[0] {
		return c.Voltage[0]
	}
	if i >= c.CurrentDensity[n-1] {
		return c.Voltage[n-1]
	}
	for k := 1; k < n; k++ {
		if i <= c.CurrentDensity[k] {
			lo, hi := c.CurrentDensity[k-1], c.CurrentDensity[k]
			frac := (i - lo) / (hi - lo)
			return c.Voltage[k-1]*(1-frac) + c.Voltage[k]*frac
		}
	}
	return c.Voltage[n-1]
}
