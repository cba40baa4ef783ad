package solar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourGrid_Shape(t *testing.T) {
	hours := HourGrid()
	require.Len(t, hours, 96)

	assert.Zero(t, hours[0])
	assert.Less(t, hours[95], 24.0)

	step := hours[1] - hours[0]
	for k := 1; k < len(hours); k++ {
		assert.InDelta(t, step, hours[k]-hours[k-1], 1e-12, "uneven spacing at %d", k)
	}
}

func TestPowerAt_BoundaryConditions(t *testing.T) {
	const capacity = 100.0

	assert.Zero(t, PowerAt(capacity, 0))
	assert.Zero(t, PowerAt(capacity, 6))
	assert.Zero(t, PowerAt(capacity, 18))
	assert.Zero(t, PowerAt(capacity, 24))

	// Peak at noon equals the installed capacity.
	assert.InDelta(t, capacity, PowerAt(capacity, 12), 1e-9)

	// Night hours are clipped, not negative.
	assert.Zero(t, PowerAt(capacity, 3))
	assert.Zero(t, PowerAt(capacity, 21.5))
}

func TestDayProfile_NeverNegative(t *testing.T) {
	p := DayProfile(250)
	require.Len(t, p.PowerKW, 96)

	for k, v := range p.PowerKW {
		assert.GreaterOrEqual(t, v, 0.0, "negative power at hour %v", p.Hours[k])
	}
}

func TestDayProfile_PeakAtNoon(t *testing.T) {
	p := DayProfile(100)
	hour, power := p.Peak()
	assert.InDelta(t, 12, hour, 0.26)
	assert.InDelta(t, 100, power, 0.1)
}

func TestDayProfile_ZeroCapacity(t *testing.T) {
	p := DayProfile(0)
	for _, v := range p.PowerKW {
		assert.Zero(t, v)
	}
}
