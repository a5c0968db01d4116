package domain

import (
	"math"
	"time"
)

// StayDurationDays returns the length of a stay in days, rounding partial
// days up. A zero-length or inverted range yields a non-positive value;
// callers reject anything below one day.
func StayDurationDays(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()
	return int(math.Ceil(hours / 24))
}

// ProratedAmount computes the charge for a stay from the listing's monthly
// rate, prorated by day and rounded up to the next whole currency unit.
func ProratedAmount(monthlyRate float64, durationDays int) int64 {
	return int64(math.Ceil(monthlyRate * float64(durationDays) / float64(DaysPerMonth)))
}
