package check_availability

import "time"

// Request availability probe for a listing and date range
type Request struct {
	ListingID    int64
	CheckInDate  time.Time
	CheckOutDate time.Time
}

// Response the probe result. The answer is advisory: the authoritative
// check happens again, under locks, when a booking is actually created.
type Response struct {
	ListingID    int64
	CheckInDate  time.Time
	CheckOutDate time.Time
	Available    bool
}
