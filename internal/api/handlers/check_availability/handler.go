package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/roomsonrent/rental-service/internal/api/handlers"
	"github.com/roomsonrent/rental-service/internal/domain"
	checkAvailability "github.com/roomsonrent/rental-service/internal/usecase/check_availability"
)

const (
	msgInvalidListingID = "invalid listing ID"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgMissingDates     = "checkIn and checkOut query parameters are required"
	msgListingNotFound  = "listing not found"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ListingID    int64  `json:"listingId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Available    bool   `json:"available"`
}

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/listings/{listingId}/availability?checkIn=&checkOut=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	listingID, err := strconv.ParseInt(vars["listingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /listings/{id}/availability - Invalid listing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidListingID)
		return
	}

	query := r.URL.Query()
	checkInRaw := query.Get("checkIn")
	checkOutRaw := query.Get("checkOut")
	if checkInRaw == "" || checkOutRaw == "" {
		h.logger.Warn("GET /listings/{id}/availability - Missing date parameters: listing_id=%d", listingID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	checkIn, err := time.Parse(domain.DateFormat, checkInRaw)
	if err != nil {
		h.logger.Warn("GET /listings/{id}/availability - Invalid checkIn: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	checkOut, err := time.Parse(domain.DateFormat, checkOutRaw)
	if err != nil {
		h.logger.Warn("GET /listings/{id}/availability - Invalid checkOut: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		ListingID:    listingID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrListingNotFound):
			h.logger.Warn("GET /listings/{id}/availability - Listing not found: listing_id=%d", listingID)
			handlers.RespondNotFound(w, msgListingNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /listings/{id}/availability - Invalid input: listing_id=%d, error=%v", listingID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /listings/{id}/availability - Failed: listing_id=%d, error=%v", listingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /listings/{id}/availability - listing_id=%d available=%t", listingID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, &AvailabilityResponse{
		ListingID:    result.ListingID,
		CheckInDate:  result.CheckInDate.Format(domain.DateFormat),
		CheckOutDate: result.CheckOutDate.Format(domain.DateFormat),
		Available:    result.Available,
	})
}
