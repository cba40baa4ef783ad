package plant

import (
	"errors"

	"h2_simulator/internal/electrolyzer"
	"h2_simulator/internal/solar"
)

// OperatingVoltage is the assumed average cell voltage (V) used to convert
// solar power into stack current. The model keeps this fixed instead of
// reading an operating point off the polarization curve; the two halves of
// the model are intentionally decoupled.
const OperatingVoltage = 1.85

var (
	ErrCellCountTooSmall = errors.New("cell count must be at least 1")
	ErrNegativeCapacity  = errors.New("solar capacity must not be negative")
)

// Inputs are the four scalars driving a simulation run.
type Inputs struct {
	TemperatureC        float64
	MembraneThicknessCm float64
	SolarCapacityKW     float64
	CellCount           int
}

func (in Inputs) Validate() error {
	if err := in.cell().Validate(); err != nil {
		return err
	}
	if in.SolarCapacityKW < 0 {
		return ErrNegativeCapacity
	}
	if in.CellCount < 1 {
		return ErrCellCountTooSmall
	}
	return nil
}

func (in Inputs) cell() electrolyzer.CellParams {
	return electrolyzer.CellParams{
		TemperatureC:        in.TemperatureC,
		MembraneThicknessCm: in.MembraneThicknessCm,
	}
}

// Result bundles the five series produced by one simulation pass: the
// polarization sweep (50 points) and the day profiles (96 points).
type Result struct {
	Polarization   *electrolyzer.PolarizationCurve
	Hours          []float64 // hour of day, [0, 24)
	SolarKW        []float64 // generation per sample
	H2GramsPerHour []float64 // hydrogen mass rate per sample
}

// Simulate runs one stateless pass: polarization curve, solar day profile and
// the Faraday-law hydrogen rate derived from it. Identical inputs always
// produce identical outputs.
func Simulate(in Inputs) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	curve, err := electrolyzer.Polarization(in.cell())
	if err != nil {
		return nil, err
	}

	profile := solar.DayProfile(in.SolarCapacityKW)

	h2 := make([]float64, len(profile.PowerKW))
	for k, kw := range profile.PowerKW {
		// Per-cell stack current from solar power at the assumed operating
		// voltage, then grams of H2 per hour via Faraday's law.
		amps := kw * 1000 / (OperatingVoltage * float64(in.CellCount))
		h2[k] = amps * electrolyzer.H2MolarMass / (2 * electrolyzer.Faraday) * 3600
	}

	return &Result{
		Polarization:   curve,
		Hours:          profile.Hours,
		SolarKW:        profile.PowerKW,
		H2GramsPerHour: h2,
	}, nil
}
