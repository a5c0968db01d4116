package domain

import "time"

// Location is a named city area listings can reference.
type Location struct {
	ID        int64
	Name      string
	Slug      string
	City      string
	State     string
	Country   string
	Popular   bool
	CreatedAt time.Time
}
