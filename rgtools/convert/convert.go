package convert

import (
	"math"
	"strconv"
	"time"
)

const metersToFeet = 3.28084
const metersToMiles = 0.0006213712

// ToFeet returns the given distance in meters to feet
func ToFeet(meters float64) float64 {
	return meters * metersToFeet
}

// ToMiles returns the given distance in meters to miles
func ToMiles(meters float64) float64 {
	return meters * metersToMiles
}

// ToKilometers returns the given distance in meters to kilometers
func ToKilometers(meters float64) float64 {
	return meters / 1000
}

// ToDaysHoursMin splits a duration in days, hours and minutes. Negative
// durations are zero.
func ToDaysHoursMin(d time.Duration) (int, int, int) {
	if d < 0 {
		return 0, 0, 0
	}
	m := int(d / time.Minute)
	return m / (24 * 60), (m / 60) % 24, m % 60
}

// Ftoan formats a float rounded to the nearest integer
func Ftoan(f float64) string {
	return strconv.Itoa(int(math.Round(f)))
}
