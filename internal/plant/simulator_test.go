package plant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"h2_simulator/internal/electrolyzer"
)

var baseInputs = Inputs{
	TemperatureC:        60,
	MembraneThicknessCm: 0.0125,
	SolarCapacityKW:     100,
	CellCount:           50,
}

func TestSimulate_SeriesShapes(t *testing.T) {
	res, err := Simulate(baseInputs)
	require.NoError(t, err)

	assert.Len(t, res.Polarization.CurrentDensity, 50)
	assert.Len(t, res.Polarization.Voltage, 50)
	assert.Len(t, res.Hours, 96)
	assert.Len(t, res.SolarKW, 96)
	assert.Len(t, res.H2GramsPerHour, 96)
}

func TestSimulate_H2ZeroWhereSolarZero(t *testing.T) {
	res, err := Simulate(baseInputs)
	require.NoError(t, err)

	for k := range res.Hours {
		assert.GreaterOrEqual(t, res.H2GramsPerHour[k], 0.0)
		if res.SolarKW[k] == 0 {
			assert.Zero(t, res.H2GramsPerHour[k], "h2 without sun at hour %v", res.Hours[k])
		} else {
			assert.Positive(t, res.H2GramsPerHour[k], "sun without h2 at hour %v", res.Hours[k])
		}
	}
}

func TestSimulate_FaradayAtNoon(t *testing.T) {
	res, err := Simulate(baseInputs)
	require.NoError(t, err)

	// Noon sits exactly on the quarter-hour grid.
	noon := 48
	require.InDelta(t, 12.0, res.Hours[noon], 1e-9)
	require.InDelta(t, 100.0, res.SolarKW[noon], 1e-9)

	amps := 100.0 * 1000 / (OperatingVoltage * 50)
	want := amps * electrolyzer.H2MolarMass / (2 * electrolyzer.Faraday) * 3600
	assert.InDelta(t, want, res.H2GramsPerHour[noon], 1e-9)
}

func TestSimulate_DoublingCellsHalvesRate(t *testing.T) {
	one, err := Simulate(baseInputs)
	require.NoError(t, err)

	doubled := baseInputs
	doubled.CellCount = 100
	two, err := Simulate(doubled)
	require.NoError(t, err)

	for k := range one.H2GramsPerHour {
		assert.InDelta(t, one.H2GramsPerHour[k]/2, two.H2GramsPerHour[k], 1e-9)
	}
}

func TestSimulate_ZeroCapacity(t *testing.T) {
	in := baseInputs
	in.SolarCapacityKW = 0
	res, err := Simulate(in)
	require.NoError(t, err)

	for k := range res.Hours {
		assert.Zero(t, res.SolarKW[k])
		assert.Zero(t, res.H2GramsPerHour[k])
	}
}

func TestSimulate_Idempotent(t *testing.T) {
	a, err := Simulate(baseInputs)
	require.NoError(t, err)
	b, err := Simulate(baseInputs)
	require.NoError(t, err)

	assert.Equal(t, a.Polarization.Voltage, b.Polarization.Voltage)
	assert.Equal(t, a.SolarKW, b.SolarKW)
	assert.Equal(t, a.H2GramsPerHour, b.H2GramsPerHour)
}

func TestSimulate_RejectsInvalidInputs(t *testing.T) {
	in := baseInputs
	in.CellCount = 0
	_, err := Simulate(in)
	assert.ErrorIs(t, err, ErrCellCountTooSmall)

	in = baseInputs
	in.SolarCapacityKW = -1
	_, err = Simulate(in)
	assert.ErrorIs(t, err, ErrNegativeCapacity)

	in = baseInputs
	in.MembraneThicknessCm = 0
	_, err = Simulate(in)
	assert.ErrorIs(t, err, electrolyzer.ErrMembraneTooThin)
}
