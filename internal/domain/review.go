package domain

import "time"

// Review is a renter's rating of a listing. One review per (listing, user)
// pair, enforced by a unique index.
type Review struct {
	ID        int64
	ListingID int64
	UserID    int64
	Title     string
	Text      string
	Rating    int
	CreatedAt time.Time
}

// RatingSummary is the aggregate written back onto a listing after every
// review mutation.
type RatingSummary struct {
	Average    float64
	NumReviews int
}
