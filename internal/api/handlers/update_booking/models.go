package update_booking

import (
	"time"

	"github.com/roomsonrent/rental-service/internal/domain"
	"github.com/roomsonrent/rental-service/internal/service/bookings/models"
)

// UpdateBookingRequest HTTP request model. Omitted fields are left
// unchanged.
type UpdateBookingRequest struct {
	CheckInDate     *string `json:"checkInDate,omitempty"`  // "2025-10-15"
	CheckOutDate    *string `json:"checkOutDate,omitempty"` // "2025-11-14"
	Guests          *int    `json:"guests,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	PaymentMethod   *string `json:"paymentMethod,omitempty"`
}

// ToServiceRequest converts the HTTP request into the service model
func (r *UpdateBookingRequest) ToServiceRequest(userID int64) (*models.UpdateBookingRequest, error) {
	req := &models.UpdateBookingRequest{
		UserID:          userID,
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
		PaymentMethod:   r.PaymentMethod,
	}

	if r.CheckInDate != nil {
		checkIn, err := time.Parse(domain.DateFormat, *r.CheckInDate)
		if err != nil {
			return nil, err
		}
		req.CheckInDate = &checkIn
	}

	if r.CheckOutDate != nil {
		checkOut, err := time.Parse(domain.DateFormat, *r.CheckOutDate)
		if err != nil {
			return nil, err
		}
		req.CheckOutDate = &checkOut
	}

	return req, nil
}
