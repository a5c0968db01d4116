package locations

import (
	"context"
	"errors"
	"fmt"

	"github.com/gosimple/slug"

	"github.com/roomsonrent/rental-service/internal/domain"
	locationRepo "github.com/roomsonrent/rental-service/internal/infra/storage/location"
	userRepo "github.com/roomsonrent/rental-service/internal/infra/storage/user"
	"github.com/roomsonrent/rental-service/internal/service/locations/models"
)

// Service handles the location directory. The list is public; only admins
// add entries.
type Service struct {
	locationRepo LocationRepository
	users        UserProvider
	logger       Logger
}

// NewService creates a locations service
func NewService(locationRepo LocationRepository, users UserProvider, logger Logger) *Service {
	return &Service{
		locationRepo: locationRepo,
		users:        users,
		logger:       logger,
	}
}

// Create registers a new area. Admin only.
func (s *Service) Create(ctx context.Context, req *models.CreateLocationRequest) (*models.LocationResponse, error) {
	s.logger.Info("Create: creating location %q by user=%d", req.Name, req.UserID)

	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrAccessDenied
		}
		s.logger.Error("Create: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - failed to get user: %v", ErrInternal, err)
	}
	if !user.IsAdmin() {
		s.logger.Warn("Create: user=%d with role=%s may not manage locations", req.UserID, user.Role)
		return nil, ErrAccessDenied
	}

	if req.Name == "" || req.City == "" {
		return nil, fmt.Errorf("%w: name and city are required", ErrInvalidInput)
	}

	loc := &domain.Location{
		Name:    req.Name,
		Slug:    slug.Make(req.Name),
		City:    req.City,
		State:   req.State,
		Country: req.Country,
		Popular: req.Popular,
	}

	created, err := s.locationRepo.Create(ctx, loc)
	if err != nil {
		if errors.Is(err, locationRepo.ErrDuplicateLocation) {
			s.logger.Warn("Create: location %q already exists", req.Name)
			return nil, ErrDuplicateLocation
		}
		s.logger.Error("Create: repository error for location %q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created location id=%d slug=%s", created.ID, created.Slug)
	return models.FromDomainLocation(created), nil
}

// GetByID fetches a location by ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.LocationResponse, error) {
	loc, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			return nil, ErrLocationNotFound
		}
		s.logger.Error("GetByID: repository error for location id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainLocation(loc), nil
}

// List returns all locations ordered by name
func (s *Service) List(ctx context.Context) (*models.LocationListResponse, error) {
	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainLocationList(locations), nil
}
