package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStayDurationDays(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 30, StayDurationDays(start, start.AddDate(0, 0, 30)))
	assert.Equal(t, 15, StayDurationDays(start, start.AddDate(0, 0, 15)))
	assert.Equal(t, 1, StayDurationDays(start, start.AddDate(0, 0, 1)))

	// zero-length and inverted stays produce non-positive durations
	assert.Equal(t, 0, StayDurationDays(start, start))
	assert.Equal(t, -5, StayDurationDays(start, start.AddDate(0, 0, -5)))

	// partial days round up
	assert.Equal(t, 2, StayDurationDays(start, start.Add(25*time.Hour)))
}

func TestProratedAmount(t *testing.T) {
	// full month at the monthly rate
	assert.Equal(t, int64(9000), ProratedAmount(9000, 30))

	// half month
	assert.Equal(t, int64(4500), ProratedAmount(9000, 15))

	// fractional shares round up to the next currency unit
	assert.Equal(t, int64(300), ProratedAmount(9000, 1))
	assert.Equal(t, int64(334), ProratedAmount(10000, 1)) // 333.33 -> 334

	// longer than a month prorates linearly
	assert.Equal(t, int64(13500), ProratedAmount(9000, 45))
}
