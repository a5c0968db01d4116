package get_listing_reviews

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/roomsonrent/rental-service/internal/api/handlers"
	"github.com/roomsonrent/rental-service/internal/service/reviews"
)

const (
	msgInvalidListingID = "invalid listing ID"
	msgListingNotFound  = "listing not found"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/listings/{listingId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	listingID, err := strconv.ParseInt(vars["listingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /listings/{id}/reviews - Invalid listing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidListingID)
		return
	}

	result, err := h.service.GetByListing(r.Context(), listingID)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrListingNotFound):
			h.logger.Warn("GET /listings/{id}/reviews - Listing not found: listing_id=%d", listingID)
			handlers.RespondNotFound(w, msgListingNotFound)

		default:
			h.logger.Error("GET /listings/{id}/reviews - Failed to get reviews: listing_id=%d, error=%v", listingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /listings/{id}/reviews - Returned %d reviews: listing_id=%d", len(result.Reviews), listingID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
