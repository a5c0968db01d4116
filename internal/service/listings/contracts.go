package listings

import (
	"context"

	"github.com/roomsonrent/rental-service/internal/domain"
)

// ListingRepository interface for listing persistence
type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	List(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error)
	Update(ctx context.Context, listing *domain.Listing) error
	Delete(ctx context.Context, id int64) error
}

// ListingCache is a read-through cache over single-listing reads. A nil
// cache disables caching entirely.
type ListingCache interface {
	Get(ctx context.Context, id int64) (*domain.Listing, error)
	Set(ctx context.Context, listing *domain.Listing) error
	Invalidate(ctx context.Context, id int64) error
}

// UserProvider supplies identity facts for authorization
type UserProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
