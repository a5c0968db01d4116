package get_listing_reviews

import (
	"context"

	"github.com/roomsonrent/rental-service/internal/service/reviews/models"
)

type ReviewService interface {
	GetByListing(ctx context.Context, listingID int64) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
