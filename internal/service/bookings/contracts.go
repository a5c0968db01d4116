package bookings

import (
	"context"

	"github.com/roomsonrent/rental-service/internal/domain"
	"github.com/roomsonrent/rental-service/internal/integrations/mailer"
)

// BookingRepository interface for booking persistence
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUser(ctx context.Context, filter domain.UserBookingsFilter) ([]*domain.Booking, error)
	GetByOwner(ctx context.Context, filter domain.OwnerBookingsFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
}

// ListingProvider supplies listing facts for notifications
type ListingProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}

// UserProvider supplies identity facts (role, contact data)
type UserProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Mailer sends booking lifecycle notifications. Failures are logged and
// swallowed; they never fail the triggering operation.
type Mailer interface {
	SendStatusChanged(n mailer.BookingNotification) error
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
