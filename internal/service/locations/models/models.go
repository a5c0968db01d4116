package models

import (
	"time"

	"github.com/roomsonrent/rental-service/internal/domain"
)

// CreateLocationRequest request to register a new area
type CreateLocationRequest struct {
	UserID  int64  `json:"userId"`
	Name    string `json:"name"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Popular bool   `json:"popular"`
}

// LocationResponse location data returned to clients
type LocationResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Country   string    `json:"country"`
	Popular   bool      `json:"popular"`
	CreatedAt time.Time `json:"createdAt"`
}

// LocationListResponse list of locations
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// FromDomainLocation converts a domain model into a DTO
func FromDomainLocation(l *domain.Location) *LocationResponse {
	if l == nil {
		return nil
	}

	return &LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		Slug:      l.Slug,
		City:      l.City,
		State:     l.State,
		Country:   l.Country,
		Popular:   l.Popular,
		CreatedAt: l.CreatedAt,
	}
}

// FromDomainLocationList converts a list of domain models into a DTO
func FromDomainLocationList(locations []*domain.Location) *LocationListResponse {
	resp := &LocationListResponse{
		Locations: make([]LocationResponse, 0, len(locations)),
	}

	for _, loc := range locations {
		if locResp := FromDomainLocation(loc); locResp != nil {
			resp.Locations = append(resp.Locations, *locResp)
		}
	}

	return resp
}
