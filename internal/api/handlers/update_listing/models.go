package update_listing

import (
	"github.com/roomsonrent/rental-service/internal/service/listings/models"
)

// UpdateListingRequest HTTP request model. Nil fields are left unchanged.
type UpdateListingRequest struct {
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

// ToServiceRequest converts the HTTP model to the service request
func (r *UpdateListingRequest) ToServiceRequest(userID int64) *models.UpdateListingRequest {
	return &models.UpdateListingRequest{
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
		Verified:         r.Verified,
		Active:           r.Active,
	}
}
