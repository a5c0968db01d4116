package reviews

import (
	"context"

	"github.com/roomsonrent/rental-service/internal/domain"
)

// ReviewRepository interface for review persistence
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	GetByListing(ctx context.Context, listingID int64) ([]*domain.Review, error)
	AggregateForListing(ctx context.Context, listingID int64) (domain.RatingSummary, error)
	Delete(ctx context.Context, id int64) error
}

// ListingRepository is the slice of listing persistence reviews need
type ListingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	UpdateRating(ctx context.Context, id int64, summary domain.RatingSummary) error
}

// ListingCache invalidation hook; rating changes must not serve stale
// listings. A nil cache disables invalidation.
type ListingCache interface {
	Invalidate(ctx context.Context, id int64) error
}

// UserProvider supplies identity facts for authorization
type UserProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// TxManager runs a function inside a database transaction
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
