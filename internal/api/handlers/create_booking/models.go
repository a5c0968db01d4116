package create_booking

import (
	"time"

	"github.com/roomsonrent/rental-service/internal/domain"
	createBooking "github.com/roomsonrent/rental-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ListingID       int64   `json:"listingId"`
	CheckInDate     string  `json:"checkInDate"`  // "2025-10-15"
	CheckOutDate    string  `json:"checkOutDate"` // "2025-11-14"
	Guests          int     `json:"guests"`
	PaymentMethod   *string `json:"paymentMethod,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	ListingID       int64   `json:"listingId"`
	UserID          int64   `json:"userId"`
	OwnerID         int64   `json:"ownerId"`
	CheckInDate     string  `json:"checkInDate"`
	CheckOutDate    string  `json:"checkOutDate"`
	DurationDays    int     `json:"durationDays"`
	Amount          int64   `json:"amount"`
	Guests          int     `json:"guests"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`
	PaymentMethod   *string `json:"paymentMethod,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckInDate)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOutDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:          userID,
		ListingID:       r.ListingID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Guests:          r.Guests,
		PaymentMethod:   r.PaymentMethod,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ListingID:       resp.ListingID,
		UserID:          resp.UserID,
		OwnerID:         resp.OwnerID,
		CheckInDate:     resp.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:    resp.CheckOutDate.Format(domain.DateFormat),
		DurationDays:    resp.DurationDays,
		Amount:          resp.Amount,
		Guests:          resp.Guests,
		Status:          resp.Status,
		PaymentStatus:   resp.PaymentStatus,
		PaymentMethod:   resp.PaymentMethod,
		SpecialRequests: resp.SpecialRequests,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
