package reviews

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomsonrent/rental-service/internal/domain"
	listingRepo "github.com/roomsonrent/rental-service/internal/infra/storage/listing"
	reviewRepo "github.com/roomsonrent/rental-service/internal/infra/storage/review"
	userRepo "github.com/roomsonrent/rental-service/internal/infra/storage/user"
	"github.com/roomsonrent/rental-service/internal/service/reviews/models"
)

// Fakes

type fakeReviewRepo struct {
	reviews map[int64]*domain.Review
	nextID  int64
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[int64]*domain.Review), nextID: 1}
}

func (f *fakeReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	for _, existing := range f.reviews {
		if existing.ListingID == review.ListingID && existing.UserID == review.UserID {
			return nil, reviewRepo.ErrDuplicateReview
		}
	}
	review.ID = f.nextID
	f.nextID++
	copied := *review
	f.reviews[review.ID] = &copied
	return review, nil
}

func (f *fakeReviewRepo) GetByID(_ context.Context, id int64) (*domain.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, reviewRepo.ErrReviewNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReviewRepo) GetByListing(_ context.Context, listingID int64) ([]*domain.Review, error) {
	var out []*domain.Review
	for _, r := range f.reviews {
		if r.ListingID == listingID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) AggregateForListing(_ context.Context, listingID int64) (domain.RatingSummary, error) {
	var sum, count int
	for _, r := range f.reviews {
		if r.ListingID == listingID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return domain.RatingSummary{}, nil
	}
	return domain.RatingSummary{Average: float64(sum) / float64(count), NumReviews: count}, nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.reviews[id]; !ok {
		return reviewRepo.ErrReviewNotFound
	}
	delete(f.reviews, id)
	return nil
}

type fakeListingRepo struct {
	listings  map[int64]*domain.Listing
	summaries map[int64]domain.RatingSummary
}

func newFakeListingRepo(listings ...*domain.Listing) *fakeListingRepo {
	repo := &fakeListingRepo{
		listings:  make(map[int64]*domain.Listing),
		summaries: make(map[int64]domain.RatingSummary),
	}
	for _, l := range listings {
		repo.listings[l.ID] = l
	}
	return repo
}

func (f *fakeListingRepo) GetByID(_ context.Context, id int64) (*domain.Listing, error) {
	l, ok := f.listings[id]
	if !ok {
		return nil, listingRepo.ErrListingNotFound
	}
	return l, nil
}

func (f *fakeListingRepo) UpdateRating(_ context.Context, id int64, summary domain.RatingSummary) error {
	l, ok := f.listings[id]
	if !ok {
		return listingRepo.ErrListingNotFound
	}
	f.summaries[id] = summary
	l.NumReviews = summary.NumReviews
	if summary.NumReviews == 0 {
		l.Rating = nil
	} else {
		avg := summary.Average
		l.Rating = &avg
	}
	return nil
}

type fakeUsers struct {
	users map[int64]*domain.User
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, userRepo.ErrUserNotFound
}

// passthroughTx runs the function without a real transaction
type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Fixtures

const (
	reviewerID = int64(1)
	otherID    = int64(2)
	adminID    = int64(3)
)

func fixtureUsers() *fakeUsers {
	return &fakeUsers{users: map[int64]*domain.User{
		reviewerID: {ID: reviewerID, Role: domain.RoleUser},
		otherID:    {ID: otherID, Role: domain.RoleUser},
		adminID:    {ID: adminID, Role: domain.RoleAdmin},
	}}
}

func newTestService(reviews *fakeReviewRepo, listings *fakeListingRepo) *Service {
	return NewService(reviews, listings, nil, fixtureUsers(), passthroughTx{}, nopLogger{})
}

func createRequest(userID int64, rating int) *models.CreateReviewRequest {
	return &models.CreateReviewRequest{
		UserID:    userID,
		ListingID: 10,
		Title:     "Great place",
		Text:      "Clean and quiet.",
		Rating:    rating,
	}
}

// Tests

func TestCreateReviewUpdatesRating(t *testing.T) {
	reviews := newFakeReviewRepo()
	listings := newFakeListingRepo(&domain.Listing{ID: 10, Active: true})
	svc := newTestService(reviews, listings)
	ctx := context.Background()

	resp, err := svc.Create(ctx, createRequest(reviewerID, 4))
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Rating)

	_, err = svc.Create(ctx, createRequest(otherID, 5))
	require.NoError(t, err)

	summary := listings.summaries[10]
	assert.Equal(t, 2, summary.NumReviews)
	assert.InDelta(t, 4.5, summary.Average, 0.001)
}

func TestCreateReviewRejections(t *testing.T) {
	reviews := newFakeReviewRepo()
	listings := newFakeListingRepo(&domain.Listing{ID: 10})
	svc := newTestService(reviews, listings)
	ctx := context.Background()

	// rating out of range
	_, err := svc.Create(ctx, createRequest(reviewerID, 6))
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Create(ctx, createRequest(reviewerID, 0))
	assert.ErrorIs(t, err, ErrInvalidInput)

	// unknown listing
	bad := createRequest(reviewerID, 4)
	bad.ListingID = 999
	_, err = svc.Create(ctx, bad)
	assert.ErrorIs(t, err, ErrListingNotFound)

	// second review from the same user
	_, err = svc.Create(ctx, createRequest(reviewerID, 4))
	require.NoError(t, err)
	_, err = svc.Create(ctx, createRequest(reviewerID, 5))
	assert.ErrorIs(t, err, ErrDuplicateReview)
}

func TestDeleteReview(t *testing.T) {
	reviews := newFakeReviewRepo()
	listings := newFakeListingRepo(&domain.Listing{ID: 10})
	svc := newTestService(reviews, listings)
	ctx := context.Background()

	resp, err := svc.Create(ctx, createRequest(reviewerID, 4))
	require.NoError(t, err)

	// a stranger may not delete
	err = svc.Delete(ctx, resp.ID, otherID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// the author may; the aggregate empties out
	require.NoError(t, svc.Delete(ctx, resp.ID, reviewerID))
	assert.Equal(t, 0, listings.summaries[10].NumReviews)
	assert.Nil(t, listings.listings[10].Rating)

	err = svc.Delete(ctx, resp.ID, reviewerID)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestDeleteReviewAsAdmin(t *testing.T) {
	reviews := newFakeReviewRepo()
	listings := newFakeListingRepo(&domain.Listing{ID: 10})
	svc := newTestService(reviews, listings)
	ctx := context.Background()

	resp, err := svc.Create(ctx, createRequest(reviewerID, 2))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, resp.ID, adminID))
}

func TestGetByListing(t *testing.T) {
	reviews := newFakeReviewRepo()
	listings := newFakeListingRepo(&domain.Listing{ID: 10})
	svc := newTestService(reviews, listings)
	ctx := context.Background()

	_, err := svc.GetByListing(ctx, 999)
	assert.ErrorIs(t, err, ErrListingNotFound)

	_, err = svc.Create(ctx, createRequest(reviewerID, 4))
	require.NoError(t, err)

	resp, err := svc.GetByListing(ctx, 10)
	require.NoError(t, err)
	require.Len(t, resp.Reviews, 1)
	assert.Equal(t, 1, resp.NumReviews)
	require.NotNil(t, resp.Rating)
	assert.InDelta(t, 4.0, *resp.Rating, 0.001)
}
