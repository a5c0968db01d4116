package list_listings

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/roomsonrent/rental-service/internal/api/handlers"
	"github.com/roomsonrent/rental-service/internal/service/listings"
	"github.com/roomsonrent/rental-service/internal/service/listings/models"
	"github.com/roomsonrent/rental-service/pkg/ptr"
)

const (
	msgInvalidFilter = "invalid filter parameters"

	defaultLimit = 20
	maxLimit     = 100
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

// Handle GET /api/v1/listings
//
// Supported query parameters: locationId, propertyType, minPrice,
// maxPrice, minBedrooms, featured, limit, offset. Only active listings
// are returned.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /listings - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, listings.ErrInvalidInput):
			h.logger.Warn("GET /listings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /listings - Failed to list listings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /listings - Returned %d listings", len(result.Listings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseFilter(query url.Values) (*models.ListListingsRequest, error) {
	req := &models.ListListingsRequest{
		ActiveOnly: true,
		Limit:      defaultLimit,
	}

	if raw := query.Get("locationId"); raw != "" {
		locationID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("locationId: %w", err)
		}
		req.LocationID = ptr.Ptr(locationID)
	}

	if raw := query.Get("propertyType"); raw != "" {
		req.PropertyType = ptr.Ptr(raw)
	}

	if raw := query.Get("minPrice"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("minPrice: %w", err)
		}
		req.MinPrice = ptr.Ptr(minPrice)
	}

	if raw := query.Get("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("maxPrice: %w", err)
		}
		req.MaxPrice = ptr.Ptr(maxPrice)
	}

	if raw := query.Get("minBedrooms"); raw != "" {
		minBedrooms, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("minBedrooms: %w", err)
		}
		req.MinBedrooms = ptr.Ptr(minBedrooms)
	}

	if raw := query.Get("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("featured: %w", err)
		}
		req.Featured = ptr.Ptr(featured)
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return nil, fmt.Errorf("limit: must be a positive integer")
		}
		if limit > maxLimit {
			limit = maxLimit
		}
		req.Limit = limit
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return nil, fmt.Errorf("offset: must be a non-negative integer")
		}
		req.Offset = offset
	}

	return req, nil
}
