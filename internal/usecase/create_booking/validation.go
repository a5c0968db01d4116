package create_booking

import (
	"fmt"
	"time"

	"github.com/roomsonrent/rental-service/internal/domain"
)

// validateRequest validates the request's structural fields
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ListingID <= 0 {
		return fmt.Errorf("%w: listingID must be positive", ErrInvalidInput)
	}

	if req.CheckInDate.IsZero() || req.CheckOutDate.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidInput)
	}

	if req.Guests < domain.MinGuests || req.Guests > domain.MaxGuests {
		return fmt.Errorf("%w: guests must be between %d and %d", ErrInvalidInput, domain.MinGuests, domain.MaxGuests)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests exceed %d characters", ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	return nil
}

// validateDates checks the stay interval itself. Check-out must fall after
// check-in and the rounded-up duration must cover at least one day.
func validateDates(req *Request, now time.Time) error {
	if !req.CheckOutDate.After(req.CheckInDate) {
		return fmt.Errorf("%w: check-out must be after check-in", ErrInvalidDateRange)
	}

	if domain.StayDurationDays(req.CheckInDate, req.CheckOutDate) < 1 {
		return fmt.Errorf("%w: stay must be at least one day", ErrInvalidDateRange)
	}

	if isDateInPast(req.CheckInDate, now) {
		return ErrDateInPast
	}

	return nil
}

// isDateInPast compares calendar days, ignoring the time of day
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
