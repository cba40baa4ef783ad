package solar

import "math"

// SamplesPerDay is the number of evenly spaced samples across [0, 24).
const SamplesPerDay = 96

// Daylight window of the half-sine model, hours.
const (
	sunriseHour = 6.0
	sunsetHour  = 18.0
	halfPeriod  = 12.0
)

// Profile holds a 24-hour generation curve sampled on a fixed quarter-hour grid.
type Profile struct {
	CapacityKW float64
	Hours      []float64 // hour of day, [0, 24)
	PowerKW    []float64 // generation at each sample, never negative
}

// PowerAt returns the modelled generation in kW at a fractional hour of day.
// The shape is a half sine between sunrise (06:00) and sunset (18:00), peaking
// at noon, clipped to zero outside the daylight window. The window check also
// pins the sunset boundary to an exact zero, where sin(π) alone would leave
// float dust.
func PowerAt(capacityKW, hour float64) float64 {
	if hour <= sunriseHour || hour >= sunsetHour {
		return 0
	}
	return capacityKW * math.Sin(math.Pi*(hour-sunriseHour)/halfPeriod)
}

// DayProfile samples the half-sine model over the fixed 96-point hour grid.
func DayProfile(capacityKW float64) *Profile {
	hours := HourGrid()
	power := make([]float64, len(hours))
	for k, h := range hours {
		power[k] = PowerAt(capacityKW, h)
	}
	return &Profile{CapacityKW: capacityKW, Hours: hours, PowerKW: power}
}

// HourGrid returns 96 evenly spaced sample times covering [0, 24).
func HourGrid() []float64 {
	hours := make([]float64, SamplesPerDay)
	step := 24.0 / SamplesPerDay
	for k := range hours {
		hours[k] = float64(k) * step
	}
	return hours
}

// Peak returns the hour and power of the profile's maximum sample.
func (p *Profile) Peak() (hour, powerKW float64) {
	for k, v := range p.PowerKW {
		if v > powerKW {
			powerKW = v
			hour = p.Hours[k]
		}
	}
	return hour, powerKW
}
