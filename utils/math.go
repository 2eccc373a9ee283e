package utils

import "math"

// Round2 rounds to 2 decimal places, the precision every report rate uses.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Percent returns part/total as a percentage rounded to 2 decimals.
// A zero total degrades to 0 rather than failing.
func Percent(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return Round2(float64(part) / float64(total) * 100)
}
