package domain

import "time"

// PropertyType classifies a rentable unit
type PropertyType string

const (
	PropertyPG        PropertyType = "PG"
	PropertyHostel    PropertyType = "Hostel"
	PropertyApartment PropertyType = "Apartment"
	PropertyRoom      PropertyType = "Room"
	PropertyFlat      PropertyType = "Flat"
	PropertyVilla     PropertyType = "Villa"
	PropertyOther     PropertyType = "Other"
)

// FurnishingStatus describes how a unit is furnished
type FurnishingStatus string

const (
	Furnished     FurnishingStatus = "Furnished"
	SemiFurnished FurnishingStatus = "Semi-Furnished"
	Unfurnished   FurnishingStatus = "Unfurnished"
)

// Listing represents a rentable property with a monthly price.
// The booking workflow reads only Price, Active and OwnerID; the rest
// is catalog data.
type Listing struct {
	ID          int64
	Title       string
	Slug        string
	Description string
	Address     string
	LocationID  *int64

	Price           float64 // monthly rate
	DiscountedPrice *float64

	PropertyType     PropertyType
	FurnishingStatus FurnishingStatus
	Bedrooms         int
	Bathrooms        int
	Amenities        []string
	Rules            []string

	Featured bool
	Verified bool
	Active   bool

	OwnerID    int64
	Rating     *float64
	NumReviews int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidPropertyType reports whether the value is a recognized property type.
func ValidPropertyType(t PropertyType) bool {
	switch t {
	case PropertyPG, PropertyHostel, PropertyApartment, PropertyRoom, PropertyFlat, PropertyVilla, PropertyOther:
		return true
	}
	return false
}

// ListingFilter is a typed filter for listing queries. Each comparison is an
// explicit optional field; there is no dynamic operator construction.
type ListingFilter struct {
	LocationID   *int64
	PropertyType *PropertyType
	MinPrice     *float64
	MaxPrice     *float64
	MinBedrooms  *int
	Featured     *bool
	OwnerID      *int64
	ActiveOnly   bool

	Limit  int
	Offset int
}
