package create_booking

import "time"

// Request booking creation request
type Request struct {
	UserID    int64 // renter making the booking
	ListingID int64

	CheckInDate  time.Time
	CheckOutDate time.Time
	Guests       int

	PaymentMethod   *string // optional
	SpecialRequests *string // optional
}

// Response the created booking
type Response struct {
	ID        int64
	ListingID int64
	UserID    int64
	OwnerID   int64

	CheckInDate  time.Time
	CheckOutDate time.Time
	DurationDays int   // derived from the date range, rounded up
	Amount       int64 // monthly rate prorated by day, fixed at creation
	Guests       int
	Status       string

	PaymentStatus   string
	PaymentMethod   *string
	SpecialRequests *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
