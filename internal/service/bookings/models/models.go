package models

import (
	"errors"
	"time"

	"github.com/roomsonrent/rental-service/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unrecognized status value
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// UpdateBookingRequest request to edit a pending booking. Nil fields are
// left unchanged. Duration and amount are never recomputed on edit.
type UpdateBookingRequest struct {
	UserID          int64      `json:"userId"`
	CheckInDate     *time.Time `json:"checkInDate,omitempty"`
	CheckOutDate    *time.Time `json:"checkOutDate,omitempty"`
	Guests          *int       `json:"guests,omitempty"`
	SpecialRequests *string    `json:"specialRequests,omitempty"`
	PaymentMethod   *string    `json:"paymentMethod,omitempty"`
}

// UpdateStatusRequest request to change a booking's status
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// GetUserBookingsRequest request for a renter's booking history
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetOwnerBookingsRequest request for bookings across an owner's listings
type GetOwnerBookingsRequest struct {
	UserID    int64   `json:"userId"`
	ListingID *int64  `json:"listingId,omitempty"` // optional narrowing to one listing
	Status    *string `json:"status,omitempty"`    // optional status filter
}

// ToDomainFilter converts the request into a domain filter
func (r *GetOwnerBookingsRequest) ToDomainFilter() (domain.OwnerBookingsFilter, error) {
	filter := domain.OwnerBookingsFilter{
		OwnerID:   r.UserID,
		ListingID: r.ListingID,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// BookingResponse booking data returned to clients
type BookingResponse struct {
	ID        int64 `json:"id"`
	ListingID int64 `json:"listingId"`
	UserID    int64 `json:"userId"`
	OwnerID   int64 `json:"ownerId"`

	CheckInDate  string `json:"checkInDate"`  // "2025-10-15"
	CheckOutDate string `json:"checkOutDate"` // "2025-11-14"
	DurationDays int    `json:"durationDays"`
	Amount       int64  `json:"amount"`
	Guests       int    `json:"guests"`
	Status       string `json:"status"`

	PaymentStatus   string  `json:"paymentStatus"`
	PaymentMethod   *string `json:"paymentMethod,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse list of bookings
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Conversion helpers

// FromDomainBooking converts a domain model into a DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		ListingID:       b.ListingID,
		UserID:          b.UserID,
		OwnerID:         b.OwnerID,
		CheckInDate:     b.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:    b.CheckOutDate.Format(domain.DateFormat),
		DurationDays:    b.DurationDays,
		Amount:          b.Amount,
		Guests:          b.Guests,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		PaymentMethod:   b.PaymentMethod,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList converts a list of domain models into a DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus converts a string into a validated domain status
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, ok := domain.ParseBookingStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}
