package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(n int) time.Time {
	return time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestBookingOverlapsRange(t *testing.T) {
	existing := &Booking{CheckInDate: day(0), CheckOutDate: day(10)}

	tests := []struct {
		name     string
		checkIn  int
		checkOut int
		want     bool
	}{
		{"check-in inside existing range", 5, 20, true},
		{"check-out inside existing range", -5, 5, true},
		{"proposed range contains existing", -5, 15, true},
		{"identical range", 0, 10, true},
		{"inside existing range", 2, 8, true},
		{"before existing range", -10, -1, false},
		{"after existing range", 11, 20, false},
		{"back-to-back on check-out is inclusive", 10, 20, true},
		{"back-to-back on check-in is inclusive", -10, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := existing.OverlapsRange(day(tt.checkIn), day(tt.checkOut))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBookingBlocksDates(t *testing.T) {
	for _, status := range []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted} {
		b := &Booking{Status: status}
		assert.True(t, b.BlocksDates(), "status %s must block dates", status)
	}

	cancelled := &Booking{Status: StatusCancelled}
	assert.False(t, cancelled.BlocksDates())
}

func TestBookingIsLocked(t *testing.T) {
	assert.False(t, (&Booking{Status: StatusPending}).IsLocked())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsLocked())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsLocked())
	assert.True(t, (&Booking{Status: StatusCompleted}).IsLocked())
}

func TestPermissiveTransitionsAllowEverything(t *testing.T) {
	statuses := []BookingStatus{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}
	for _, from := range statuses {
		for _, to := range statuses {
			assert.True(t, PermissiveTransitions.Allows(from, to), "%s -> %s", from, to)
		}
	}
}

func TestStrictTransitions(t *testing.T) {
	assert.True(t, StrictTransitions.Allows(StatusPending, StatusConfirmed))
	assert.True(t, StrictTransitions.Allows(StatusPending, StatusCancelled))
	assert.True(t, StrictTransitions.Allows(StatusConfirmed, StatusCompleted))
	assert.True(t, StrictTransitions.Allows(StatusConfirmed, StatusCancelled))

	assert.False(t, StrictTransitions.Allows(StatusPending, StatusCompleted))
	assert.False(t, StrictTransitions.Allows(StatusCompleted, StatusPending))
	assert.False(t, StrictTransitions.Allows(StatusCancelled, StatusPending))
	assert.False(t, StrictTransitions.Allows(StatusCompleted, StatusConfirmed))
}

func TestParseBookingStatus(t *testing.T) {
	for _, raw := range []string{"pending", "confirmed", "cancelled", "completed"} {
		status, ok := ParseBookingStatus(raw)
		assert.True(t, ok)
		assert.Equal(t, BookingStatus(raw), status)
	}

	_, ok := ParseBookingStatus("archived")
	assert.False(t, ok)
}
