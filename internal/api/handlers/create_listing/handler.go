package create_listing

import (
	"errors"
	"net/http"

	"github.com/roomsonrent/rental-service/internal/api/handlers"
	"github.com/roomsonrent/rental-service/internal/api/middleware"
	"github.com/roomsonrent/rental-service/internal/service/listings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user ID"
	msgForbidden          = "only owners and admins may publish listings"
	msgInvalidListing     = "invalid listing data"
)

type Handler struct {
	service ListingService
	logger  Logger
}

func NewHandler(service ListingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/listings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /listings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateListingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /listings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, listings.ErrAccessDenied):
			h.logger.Warn("POST /listings - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, listings.ErrInvalidInput):
			h.logger.Warn("POST /listings - Invalid listing data: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidListing)

		default:
			h.logger.Error("POST /listings - Failed to create listing: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /listings - Listing created: listing_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
