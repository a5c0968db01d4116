package domain

// Pricing constants
const (
	// DaysPerMonth is the proration base: a stay is priced as
	// ceil(monthlyRate * days / DaysPerMonth).
	DaysPerMonth = 30
)

// Business validation constants
const (
	MinGuests                = 1
	MaxGuests                = 20
	MaxSpecialRequestsLength = 500
	MaxTitleLength           = 100
	MaxDescriptionLength     = 2000
	MaxReviewTitleLength     = 100
	MinRating                = 1
	MaxRating                = 5
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
