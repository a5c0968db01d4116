package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/roomsonrent/rental-service/internal/domain"
	listingRepo "github.com/roomsonrent/rental-service/internal/infra/storage/listing"
	reviewRepo "github.com/roomsonrent/rental-service/internal/infra/storage/review"
	userRepo "github.com/roomsonrent/rental-service/internal/infra/storage/user"
	"github.com/roomsonrent/rental-service/internal/service/reviews/models"
)

// Service handles listing reviews. Every mutation re-aggregates the
// listing's rating inside the same transaction, so the denormalized rating
// and the reviews table never drift.
type Service struct {
	reviewRepo  ReviewRepository
	listingRepo ListingRepository
	cache       ListingCache
	users       UserProvider
	txManager   TxManager
	logger      Logger
}

// NewService creates a reviews service. The cache may be nil.
func NewService(
	reviewRepo ReviewRepository,
	listingRepo ListingRepository,
	cache ListingCache,
	users UserProvider,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		reviewRepo:  reviewRepo,
		listingRepo: listingRepo,
		cache:       cache,
		users:       users,
		txManager:   txManager,
		logger:      logger,
	}
}

// Create adds a review to a listing and refreshes the listing's rating.
// One review per user per listing.
func (s *Service) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Create: creating review for listing=%d by user=%d", req.ListingID, req.UserID)

	if err := validateReview(req); err != nil {
		s.logger.Warn("Create: invalid review from user=%d: %v", req.UserID, err)
		return nil, err
	}

	if _, err := s.listingRepo.GetByID(ctx, req.ListingID); err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			s.logger.Warn("Create: listing id=%d not found", req.ListingID)
			return nil, ErrListingNotFound
		}
		s.logger.Error("Create: failed to get listing id=%d: %v", req.ListingID, err)
		return nil, fmt.Errorf("%w: Create - failed to get listing: %v", ErrInternal, err)
	}

	review := &domain.Review{
		ListingID: req.ListingID,
		UserID:    req.UserID,
		Title:     req.Title,
		Text:      req.Text,
		Rating:    req.Rating,
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := s.reviewRepo.Create(txCtx, review)
		if err != nil {
			return err
		}
		review = created
		return s.refreshRating(txCtx, req.ListingID)
	})
	if err != nil {
		if errors.Is(err, reviewRepo.ErrDuplicateReview) {
			s.logger.Warn("Create: user=%d already reviewed listing=%d", req.UserID, req.ListingID)
			return nil, ErrDuplicateReview
		}
		s.logger.Error("Create: transaction failed for listing=%d: %v", req.ListingID, err)
		return nil, fmt.Errorf("%w: Create - transaction failed: %v", ErrInternal, err)
	}

	s.invalidateCache(ctx, req.ListingID)

	s.logger.Info("Create: created review id=%d for listing=%d", review.ID, req.ListingID)
	return models.FromDomainReview(review), nil
}

// GetByListing returns a listing's reviews with the current aggregate
func (s *Service) GetByListing(ctx context.Context, listingID int64) (*models.ReviewListResponse, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			return nil, ErrListingNotFound
		}
		s.logger.Error("GetByListing: failed to get listing id=%d: %v", listingID, err)
		return nil, fmt.Errorf("%w: GetByListing - failed to get listing: %v", ErrInternal, err)
	}

	reviews, err := s.reviewRepo.GetByListing(ctx, listingID)
	if err != nil {
		s.logger.Error("GetByListing: repository error for listing id=%d: %v", listingID, err)
		return nil, fmt.Errorf("%w: GetByListing - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReviewList(reviews, listing.Rating, listing.NumReviews), nil
}

// Delete removes a review and refreshes the listing's rating. Only the
// review's author or an admin may delete.
func (s *Service) Delete(ctx context.Context, reviewID int64, userID int64) error {
	s.logger.Info("Delete: deleting review id=%d by user=%d", reviewID, userID)

	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			s.logger.Warn("Delete: review id=%d not found", reviewID)
			return ErrReviewNotFound
		}
		s.logger.Error("Delete: repository error for review id=%d: %v", reviewID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if review.UserID != userID {
		admin, err := s.isAdmin(ctx, userID)
		if err != nil {
			return err
		}
		if !admin {
			s.logger.Warn("Delete: access denied for user=%d to review id=%d", userID, reviewID)
			return ErrAccessDenied
		}
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.reviewRepo.Delete(txCtx, reviewID); err != nil {
			return err
		}
		return s.refreshRating(txCtx, review.ListingID)
	})
	if err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			return ErrReviewNotFound
		}
		s.logger.Error("Delete: transaction failed for review id=%d: %v", reviewID, err)
		return fmt.Errorf("%w: Delete - transaction failed: %v", ErrInternal, err)
	}

	s.invalidateCache(ctx, review.ListingID)

	s.logger.Info("Delete: successfully deleted review id=%d", reviewID)
	return nil
}

// Helpers

func (s *Service) refreshRating(ctx context.Context, listingID int64) error {
	summary, err := s.reviewRepo.AggregateForListing(ctx, listingID)
	if err != nil {
		return err
	}
	return s.listingRepo.UpdateRating(ctx, listingID, summary)
}

func (s *Service) isAdmin(ctx context.Context, userID int64) (bool, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return false, nil
		}
		s.logger.Error("isAdmin: failed to get user id=%d: %v", userID, err)
		return false, fmt.Errorf("%w: isAdmin - failed to get user: %v", ErrInternal, err)
	}
	return user.IsAdmin(), nil
}

func (s *Service) invalidateCache(ctx context.Context, listingID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, listingID); err != nil {
		s.logger.Warn("invalidateCache: failed to invalidate listing id=%d: %v", listingID, err)
	}
}

func validateReview(req *models.CreateReviewRequest) error {
	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}
	if req.Title == "" || len(req.Title) > domain.MaxReviewTitleLength {
		return fmt.Errorf("%w: title must be 1-%d characters", ErrInvalidInput, domain.MaxReviewTitleLength)
	}
	return nil
}
