package create_booking

import (
	"context"
	"time"

	"github.com/roomsonrent/rental-service/internal/domain"
	"github.com/roomsonrent/rental-service/internal/integrations/mailer"
)

// BookingRepository interface for booking persistence
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindBlocking(ctx context.Context, listingID int64) ([]*domain.Booking, error)
}

// ListingRepository interface for listing reads. The workflow reads the
// listing straight from storage, not through the cache, so the rate used
// for pricing is always current.
type ListingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}

// UserProvider supplies owner contact data for notifications
type UserProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Mailer notifies the listing owner about new booking requests. Failures
// are logged and swallowed.
type Mailer interface {
	SendBookingRequested(n mailer.BookingNotification) error
}

// TransactionManager interface for transaction control
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider interface for obtaining the current time (for testing)
type TimeProvider interface {
	Now() time.Time
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
