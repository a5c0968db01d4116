package mailer

import "time"

// BookingNotification is the payload for booking lifecycle emails: listing
// title, stay dates and the computed amount.
type BookingNotification struct {
	RecipientEmail string
	RecipientName  string
	ListingTitle   string
	CheckInDate    time.Time
	CheckOutDate   time.Time
	Amount         int64
	Status         string
}
