package create_review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/roomsonrent/rental-service/internal/api/handlers"
	"github.com/roomsonrent/rental-service/internal/api/middleware"
	"github.com/roomsonrent/rental-service/internal/service/reviews"
	"github.com/roomsonrent/rental-service/internal/service/reviews/models"
)

const (
	msgInvalidListingID   = "invalid listing ID"
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user ID"
	msgListingNotFound    = "listing not found"
	msgDuplicate          = "you have already reviewed this listing"
	msgInvalidReview      = "invalid review data"
)

// CreateReviewRequest HTTP request model
type CreateReviewRequest struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

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

// Handle POST /api/v1/listings/{listingId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	listingID, err := strconv.ParseInt(vars["listingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /listings/{id}/reviews - Invalid listing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidListingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /listings/{id}/reviews - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /listings/{id}/reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &models.CreateReviewRequest{
		UserID:    userID,
		ListingID: listingID,
		Title:     req.Title,
		Text:      req.Text,
		Rating:    req.Rating,
	})
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrListingNotFound):
			h.logger.Warn("POST /listings/{id}/reviews - Listing not found: listing_id=%d", listingID)
			handlers.RespondNotFound(w, msgListingNotFound)

		case errors.Is(err, reviews.ErrDuplicateReview):
			h.logger.Warn("POST /listings/{id}/reviews - Duplicate review: listing_id=%d, user_id=%d", listingID, userID)
			handlers.RespondConflict(w, msgDuplicate)

		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /listings/{id}/reviews - Invalid review data: listing_id=%d, error=%v", listingID, err)
			handlers.RespondBadRequest(w, msgInvalidReview)

		default:
			h.logger.Error("POST /listings/{id}/reviews - Failed to create review: listing_id=%d, error=%v", listingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /listings/{id}/reviews - Review created: review_id=%d, listing_id=%d, user_id=%d",
		result.ID, listingID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
