package listings

import (
	"context"
	"errors"
	"fmt"

	"github.com/gosimple/slug"

	"github.com/roomsonrent/rental-service/internal/domain"
	listingRepo "github.com/roomsonrent/rental-service/internal/infra/storage/listing"
	userRepo "github.com/roomsonrent/rental-service/internal/infra/storage/user"
	"github.com/roomsonrent/rental-service/internal/service/listings/models"
)

// Service handles the listing catalog. Reads are public; mutations require
// the listing's owner or an admin.
type Service struct {
	listingRepo ListingRepository
	cache       ListingCache
	users       UserProvider
	logger      Logger
}

// NewService creates a listings service. The cache may be nil when caching
// is disabled.
func NewService(listingRepo ListingRepository, cache ListingCache, users UserProvider, logger Logger) *Service {
	return &Service{
		listingRepo: listingRepo,
		cache:       cache,
		users:       users,
		logger:      logger,
	}
}

// Create publishes a new listing owned by the requesting user. Only owners
// and admins may publish. The URL slug is derived from the title.
func (s *Service) Create(ctx context.Context, req *models.CreateListingRequest) (*models.ListingResponse, error) {
	s.logger.Info("Create: creating listing %q for user=%d", req.Title, req.UserID)

	user, err := s.fetchUser(ctx, req.UserID, "Create")
	if err != nil {
		return nil, err
	}
	if !user.CanManageListings() {
		s.logger.Warn("Create: user=%d with role=%s may not publish listings", req.UserID, user.Role)
		return nil, ErrAccessDenied
	}

	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: invalid listing data from user=%d: %v", req.UserID, err)
		return nil, err
	}

	listing := &domain.Listing{
		Title:            req.Title,
		Slug:             slug.Make(req.Title),
		Description:      req.Description,
		Address:          req.Address,
		LocationID:       req.LocationID,
		Price:            req.Price,
		DiscountedPrice:  req.DiscountedPrice,
		PropertyType:     domain.PropertyType(req.PropertyType),
		FurnishingStatus: domain.FurnishingStatus(req.FurnishingStatus),
		Bedrooms:         req.Bedrooms,
		Bathrooms:        req.Bathrooms,
		Amenities:        req.Amenities,
		Rules:            req.Rules,
		Featured:         req.Featured,
		Active:           true,
		OwnerID:          req.UserID,
	}

	created, err := s.listingRepo.Create(ctx, listing)
	if err != nil {
		s.logger.Error("Create: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created listing id=%d slug=%s", created.ID, created.Slug)
	return models.FromDomainListing(created), nil
}

// GetByID fetches a listing, serving from the cache when warm
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ListingResponse, error) {
	listing, err := s.getDomainListing(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainListing(listing), nil
}

// List returns the catalog filtered by the typed filter, newest first
func (s *Service) List(ctx context.Context, req *models.ListListingsRequest) (*models.ListingListResponse, error) {
	if req.PropertyType != nil && !domain.ValidPropertyType(domain.PropertyType(*req.PropertyType)) {
		s.logger.Warn("List: invalid property type %q", *req.PropertyType)
		return nil, fmt.Errorf("%w: unknown property type", ErrInvalidInput)
	}

	listings, err := s.listingRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d listings", len(listings))
	return models.FromDomainListingList(listings), nil
}

// Update edits a listing. Only the owner or an admin may edit. A changed
// title re-derives the slug, and the cache entry is invalidated.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateListingRequest) (*models.ListingResponse, error) {
	s.logger.Info("Update: updating listing id=%d by user=%d", id, req.UserID)

	listing, err := s.fetchListing(ctx, id, "Update")
	if err != nil {
		return nil, err
	}

	if err := s.checkManageAccess(ctx, listing, req.UserID, "Update"); err != nil {
		return nil, err
	}

	if err := applyUpdate(listing, req); err != nil {
		s.logger.Warn("Update: invalid listing data for id=%d: %v", id, err)
		return nil, err
	}

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			return nil, ErrListingNotFound
		}
		s.logger.Error("Update: repository error for listing id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.invalidateCache(ctx, id)

	s.logger.Info("Update: successfully updated listing id=%d", id)
	return models.FromDomainListing(listing), nil
}

// Delete removes a listing and its reviews. Only the owner or an admin may
// delete.
func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Delete: deleting listing id=%d by user=%d", id, userID)

	listing, err := s.fetchListing(ctx, id, "Delete")
	if err != nil {
		return err
	}

	if err := s.checkManageAccess(ctx, listing, userID, "Delete"); err != nil {
		return err
	}

	if err := s.listingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			return ErrListingNotFound
		}
		s.logger.Error("Delete: repository error for listing id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.invalidateCache(ctx, id)

	s.logger.Info("Delete: successfully deleted listing id=%d", id)
	return nil
}

// Helpers

// getDomainListing is the read-through path shared by GetByID and other
// services that need raw listing facts.
func (s *Service) getDomainListing(ctx context.Context, id int64) (*domain.Listing, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return cached, nil
		}
	}

	listing, err := s.fetchListing(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, listing); err != nil {
			// cache population is best effort
			s.logger.Warn("getDomainListing: failed to cache listing id=%d: %v", id, err)
		}
	}

	return listing, nil
}

func (s *Service) fetchListing(ctx context.Context, id int64, op string) (*domain.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			s.logger.Warn("%s: listing id=%d not found", op, id)
			return nil, ErrListingNotFound
		}
		s.logger.Error("%s: repository error for listing id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return listing, nil
}

func (s *Service) fetchUser(ctx context.Context, id int64, op string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: user id=%d not found", op, id)
			return nil, ErrAccessDenied
		}
		s.logger.Error("%s: failed to get user id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - failed to get user: %v", ErrInternal, op, err)
	}
	return user, nil
}

// checkManageAccess allows the listing's owner and admins
func (s *Service) checkManageAccess(ctx context.Context, listing *domain.Listing, userID int64, op string) error {
	if listing.OwnerID == userID {
		return nil
	}

	user, err := s.fetchUser(ctx, userID, op)
	if err != nil {
		return err
	}
	if !user.IsAdmin() {
		s.logger.Warn("%s: access denied for user=%d to listing id=%d", op, userID, listing.ID)
		return ErrAccessDenied
	}
	return nil
}

func (s *Service) invalidateCache(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn("invalidateCache: failed to invalidate listing id=%d: %v", id, err)
	}
}

// Validation

func validateCreate(req *models.CreateListingRequest) error {
	if req.Title == "" || len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title must be 1-%d characters", ErrInvalidInput, domain.MaxTitleLength)
	}
	if len(req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description too long", ErrInvalidInput)
	}
	if req.Address == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if req.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if req.DiscountedPrice != nil && (*req.DiscountedPrice <= 0 || *req.DiscountedPrice >= req.Price) {
		return fmt.Errorf("%w: discounted price must be positive and below the price", ErrInvalidInput)
	}
	if !domain.ValidPropertyType(domain.PropertyType(req.PropertyType)) {
		return fmt.Errorf("%w: unknown property type", ErrInvalidInput)
	}
	if req.Bedrooms < 0 || req.Bathrooms < 0 {
		return fmt.Errorf("%w: room counts cannot be negative", ErrInvalidInput)
	}
	return nil
}

func applyUpdate(listing *domain.Listing, req *models.UpdateListingRequest) error {
	if req.Title != nil {
		if *req.Title == "" || len(*req.Title) > domain.MaxTitleLength {
			return fmt.Errorf("%w: title must be 1-%d characters", ErrInvalidInput, domain.MaxTitleLength)
		}
		listing.Title = *req.Title
		listing.Slug = slug.Make(*req.Title)
	}
	if req.Description != nil {
		if len(*req.Description) > domain.MaxDescriptionLength {
			return fmt.Errorf("%w: description too long", ErrInvalidInput)
		}
		listing.Description = *req.Description
	}
	if req.Address != nil {
		if *req.Address == "" {
			return fmt.Errorf("%w: address is required", ErrInvalidInput)
		}
		listing.Address = *req.Address
	}
	if req.LocationID != nil {
		listing.LocationID = req.LocationID
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
		}
		listing.Price = *req.Price
	}
	if req.DiscountedPrice != nil {
		if *req.DiscountedPrice <= 0 || *req.DiscountedPrice >= listing.Price {
			return fmt.Errorf("%w: discounted price must be positive and below the price", ErrInvalidInput)
		}
		listing.DiscountedPrice = req.DiscountedPrice
	}
	if req.PropertyType != nil {
		propertyType := domain.PropertyType(*req.PropertyType)
		if !domain.ValidPropertyType(propertyType) {
			return fmt.Errorf("%w: unknown property type", ErrInvalidInput)
		}
		listing.PropertyType = propertyType
	}
	if req.FurnishingStatus != nil {
		listing.FurnishingStatus = domain.FurnishingStatus(*req.FurnishingStatus)
	}
	if req.Bedrooms != nil {
		if *req.Bedrooms < 0 {
			return fmt.Errorf("%w: room counts cannot be negative", ErrInvalidInput)
		}
		listing.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		if *req.Bathrooms < 0 {
			return fmt.Errorf("%w: room counts cannot be negative", ErrInvalidInput)
		}
		listing.Bathrooms = *req.Bathrooms
	}
	if req.Amenities != nil {
		listing.Amenities = req.Amenities
	}
	if req.Rules != nil {
		listing.Rules = req.Rules
	}
	if req.Featured != nil {
		listing.Featured = *req.Featured
	}
	if req.Verified != nil {
		listing.Verified = *req.Verified
	}
	if req.Active != nil {
		listing.Active = *req.Active
	}
	return nil
}
