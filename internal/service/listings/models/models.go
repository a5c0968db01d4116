package models

import (
	"time"

	"github.com/roomsonrent/rental-service/internal/domain"
)

// Request models

// CreateListingRequest request to publish a new listing
type CreateListingRequest struct {
	UserID int64 `json:"userId"`

	Title       string `json:"title"`
	Description string `json:"description"`
	Address     string `json:"address"`
	LocationID  *int64 `json:"locationId,omitempty"`

	Price           float64  `json:"price"` // monthly rate
	DiscountedPrice *float64 `json:"discountedPrice,omitempty"`

	PropertyType     string   `json:"propertyType"`
	FurnishingStatus string   `json:"furnishingStatus"`
	Bedrooms         int      `json:"bedrooms"`
	Bathrooms        int      `json:"bathrooms"`
	Amenities        []string `json:"amenities,omitempty"`
	Rules            []string `json:"rules,omitempty"`

	Featured bool `json:"featured"`
}

// UpdateListingRequest request to edit a listing. Nil fields are left
// unchanged.
type UpdateListingRequest struct {
	UserID int64 `json:"userId"`

	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Address     *string `json:"address,omitempty"`
	LocationID  *int64  `json:"locationId,omitempty"`

	Price           *float64 `json:"price,omitempty"`
	DiscountedPrice *float64 `json:"discountedPrice,omitempty"`

	PropertyType     *string  `json:"propertyType,omitempty"`
	FurnishingStatus *string  `json:"furnishingStatus,omitempty"`
	Bedrooms         *int     `json:"bedrooms,omitempty"`
	Bathrooms        *int     `json:"bathrooms,omitempty"`
	Amenities        []string `json:"amenities,omitempty"`
	Rules            []string `json:"rules,omitempty"`

	Featured *bool `json:"featured,omitempty"`
	Verified *bool `json:"verified,omitempty"`
	Active   *bool `json:"active,omitempty"`
}

// ListListingsRequest typed catalog filter
type ListListingsRequest struct {
	LocationID   *int64   `json:"locationId,omitempty"`
	PropertyType *string  `json:"propertyType,omitempty"`
	MinPrice     *float64 `json:"minPrice,omitempty"`
	MaxPrice     *float64 `json:"maxPrice,omitempty"`
	MinBedrooms  *int     `json:"minBedrooms,omitempty"`
	Featured     *bool    `json:"featured,omitempty"`
	OwnerID      *int64   `json:"ownerId,omitempty"`
	ActiveOnly   bool     `json:"activeOnly,omitempty"`

	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

// ToDomainFilter converts the request into a domain filter
func (r *ListListingsRequest) ToDomainFilter() domain.ListingFilter {
	filter := domain.ListingFilter{
		LocationID:  r.LocationID,
		MinPrice:    r.MinPrice,
		MaxPrice:    r.MaxPrice,
		MinBedrooms: r.MinBedrooms,
		Featured:    r.Featured,
		OwnerID:     r.OwnerID,
		ActiveOnly:  r.ActiveOnly,
		Limit:       r.Limit,
		Offset:      r.Offset,
	}

	if r.PropertyType != nil {
		propertyType := domain.PropertyType(*r.PropertyType)
		filter.PropertyType = &propertyType
	}

	return filter
}

// Response models

// ListingResponse listing data returned to clients
type ListingResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Address     string `json:"address"`
	LocationID  *int64 `json:"locationId,omitempty"`

	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discountedPrice,omitempty"`

	PropertyType     string   `json:"propertyType"`
	FurnishingStatus string   `json:"furnishingStatus"`
	Bedrooms         int      `json:"bedrooms"`
	Bathrooms        int      `json:"bathrooms"`
	Amenities        []string `json:"amenities"`
	Rules            []string `json:"rules"`

	Featured bool `json:"featured"`
	Verified bool `json:"verified"`
	Active   bool `json:"active"`

	OwnerID    int64    `json:"ownerId"`
	Rating     *float64 `json:"rating,omitempty"`
	NumReviews int      `json:"numReviews"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListingListResponse list of listings
type ListingListResponse struct {
	Listings []ListingResponse `json:"listings"`
}

// Conversion helpers

// FromDomainListing converts a domain model into a DTO
func FromDomainListing(l *domain.Listing) *ListingResponse {
	if l == nil {
		return nil
	}

	return &ListingResponse{
		ID:               l.ID,
		Title:            l.Title,
		Slug:             l.Slug,
		Description:      l.Description,
		Address:          l.Address,
		LocationID:       l.LocationID,
		Price:            l.Price,
		DiscountedPrice:  l.DiscountedPrice,
		PropertyType:     string(l.PropertyType),
		FurnishingStatus: string(l.FurnishingStatus),
		Bedrooms:         l.Bedrooms,
		Bathrooms:        l.Bathrooms,
		Amenities:        l.Amenities,
		Rules:            l.Rules,
		Featured:         l.Featured,
		Verified:         l.Verified,
		Active:           l.Active,
		OwnerID:          l.OwnerID,
		Rating:           l.Rating,
		NumReviews:       l.NumReviews,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

// FromDomainListingList converts a list of domain models into a DTO
func FromDomainListingList(listings []*domain.Listing) *ListingListResponse {
	resp := &ListingListResponse{
		Listings: make([]ListingResponse, 0, len(listings)),
	}

	for _, listing := range listings {
		if listingResp := FromDomainListing(listing); listingResp != nil {
			resp.Listings = append(resp.Listings, *listingResp)
		}
	}

	return resp
}
