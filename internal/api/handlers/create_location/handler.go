package create_location

import (
	"errors"
	"net/http"

	"github.com/roomsonrent/rental-service/internal/api/handlers"
	"github.com/roomsonrent/rental-service/internal/api/middleware"
	"github.com/roomsonrent/rental-service/internal/service/locations"
	"github.com/roomsonrent/rental-service/internal/service/locations/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user ID"
	msgForbidden          = "only admins may manage locations"
	msgDuplicate          = "location already exists"
	msgInvalidLocation    = "name and city are required"
)

// CreateLocationRequest HTTP request model
type CreateLocationRequest struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Popular bool   `json:"popular"`
}

type Handler struct {
	service LocationService
	logger  Logger
}

func NewHandler(service LocationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/locations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /locations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateLocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /locations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &models.CreateLocationRequest{
		UserID:  userID,
		Name:    req.Name,
		City:    req.City,
		State:   req.State,
		Country: req.Country,
		Popular: req.Popular,
	})
	if err != nil {
		switch {
		case errors.Is(err, locations.ErrAccessDenied):
			h.logger.Warn("POST /locations - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, locations.ErrDuplicateLocation):
			h.logger.Warn("POST /locations - Duplicate location %q", req.Name)
			handlers.RespondConflict(w, msgDuplicate)

		case errors.Is(err, locations.ErrInvalidInput):
			h.logger.Warn("POST /locations - Invalid location data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLocation)

		default:
			h.logger.Error("POST /locations - Failed to create location: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /locations - Location created: location_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
