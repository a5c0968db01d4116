package create_listing

import (
	"github.com/roomsonrent/rental-service/internal/service/listings/models"
)

// CreateListingRequest HTTP request model
type CreateListingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Address     string `json:"address"`
	LocationID  *int64 `json:"locationId,omitempty"`

	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discountedPrice,omitempty"`

	PropertyType     string   `json:"propertyType"`
	FurnishingStatus string   `json:"furnishingStatus"`
	Bedrooms         int      `json:"bedrooms"`
	Bathrooms        int      `json:"bathrooms"`
	Amenities        []string `json:"amenities,omitempty"`
	Rules            []string `json:"rules,omitempty"`

	Featured bool `json:"featured"`
}

// ToServiceRequest converts the HTTP model to the service request. The
// owner is taken from the authenticated user, not the body.
func (r *CreateListingRequest) ToServiceRequest(userID int64) *models.CreateListingRequest {
	return &models.CreateListingRequest{
		UserID:           userID,
		Title:            r.Title,
		Description:      r.Description,
		Address:          r.Address,
		LocationID:       r.LocationID,
		Price:            r.Price,
		DiscountedPrice:  r.DiscountedPrice,
		PropertyType:     r.PropertyType,
		FurnishingStatus: r.FurnishingStatus,
		Bedrooms:         r.Bedrooms,
		Bathrooms:        r.Bathrooms,
		Amenities:        r.Amenities,
		Rules:            r.Rules,
		Featured:         r.Featured,
	}
}
