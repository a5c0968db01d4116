package models

import (
	"time"

	"github.com/roomsonrent/rental-service/internal/domain"
)

// CreateReviewRequest request to review a listing
type CreateReviewRequest struct {
	UserID    int64  `json:"userId"`
	ListingID int64  `json:"listingId"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Rating    int    `json:"rating"`
}

// ReviewResponse review data returned to clients
type ReviewResponse struct {
	ID        int64     `json:"id"`
	ListingID int64     `json:"listingId"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewListResponse the reviews of a listing plus the current aggregate
type ReviewListResponse struct {
	Reviews    []ReviewResponse `json:"reviews"`
	Rating     *float64         `json:"rating,omitempty"`
	NumReviews int              `json:"numReviews"`
}

// FromDomainReview converts a domain model into a DTO
func FromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}

	return &ReviewResponse{
		ID:        r.ID,
		ListingID: r.ListingID,
		UserID:    r.UserID,
		Title:     r.Title,
		Text:      r.Text,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt,
	}
}

// FromDomainReviewList converts reviews and the listing's aggregate into a DTO
func FromDomainReviewList(reviews []*domain.Review, rating *float64, numReviews int) *ReviewListResponse {
	resp := &ReviewListResponse{
		Reviews:    make([]ReviewResponse, 0, len(reviews)),
		Rating:     rating,
		NumReviews: numReviews,
	}

	for _, review := range reviews {
		if reviewResp := FromDomainReview(review); reviewResp != nil {
			resp.Reviews = append(resp.Reviews, *reviewResp)
		}
	}

	return resp
}
