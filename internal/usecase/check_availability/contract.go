package check_availability

import (
	"context"

	"github.com/roomsonrent/rental-service/internal/domain"
)

// BookingRepository interface for booking reads
type BookingRepository interface {
	FindBlocking(ctx context.Context, listingID int64) ([]*domain.Booking, error)
}

// ListingRepository interface for listing reads
type ListingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
