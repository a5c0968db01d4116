package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking represents a reservation of a listing for a date range.
// DurationDays and Amount are derived once at creation from the stay
// interval and the listing's monthly rate; edits never re-derive them.
type Booking struct {
	ID        int64
	ListingID int64
	UserID    int64
	OwnerID   int64 // listing owner at time of booking, denormalized for authorization checks

	CheckInDate  time.Time
	CheckOutDate time.Time
	DurationDays int
	Amount       int64
	Guests       int
	Status       BookingStatus

	PaymentStatus   PaymentStatus
	PaymentMethod   *string
	SpecialRequests *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BlocksDates returns true if the booking occupies its date range for
// availability purposes. Cancelled bookings release their dates.
func (b *Booking) BlocksDates() bool {
	return b.Status != StatusCancelled
}

// IsLocked returns true once the booking has been confirmed or completed.
// A locked booking rejects ordinary edits and deletes; only the dedicated
// status-transition operation may still change its status.
func (b *Booking) IsLocked() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCompleted
}

// OverlapsRange reports whether the booking's [check-in, check-out] range
// shares at least one day with the proposed range. Boundaries are inclusive:
// a stay starting exactly on another stay's check-out day counts as an
// overlap. Three cases are tested: the proposed check-in falls inside the
// booking, the proposed check-out falls inside the booking, or the proposed
// range fully contains the booking.
func (b *Booking) OverlapsRange(checkIn, checkOut time.Time) bool {
	containsIn := !b.CheckInDate.After(checkIn) && !b.CheckOutDate.Before(checkIn)
	containsOut := !b.CheckInDate.After(checkOut) && !b.CheckOutDate.Before(checkOut)
	encloses := !b.CheckInDate.Before(checkIn) && !b.CheckOutDate.After(checkOut)
	return containsIn || containsOut || encloses
}

// UserBookingsFilter filter for a renter's booking history
type UserBookingsFilter struct {
	UserID int64
	Status *BookingStatus
}

// OwnerBookingsFilter filter for bookings across an owner's listings
type OwnerBookingsFilter struct {
	OwnerID   int64
	ListingID *int64
	Status    *BookingStatus
}
