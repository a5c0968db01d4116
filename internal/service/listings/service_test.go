package listings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomsonrent/rental-service/internal/domain"
	cachepkg "github.com/roomsonrent/rental-service/internal/infra/cache/listing"
	listingRepo "github.com/roomsonrent/rental-service/internal/infra/storage/listing"
	userRepo "github.com/roomsonrent/rental-service/internal/infra/storage/user"
	"github.com/roomsonrent/rental-service/internal/service/listings/models"
	"github.com/roomsonrent/rental-service/pkg/ptr"
)

// Fakes

type fakeListingRepo struct {
	listings map[int64]*domain.Listing
	nextID   int64
}

func newFakeListingRepo(listings ...*domain.Listing) *fakeListingRepo {
	repo := &fakeListingRepo{listings: make(map[int64]*domain.Listing), nextID: 1}
	for _, l := range listings {
		repo.listings[l.ID] = l
		if l.ID >= repo.nextID {
			repo.nextID = l.ID + 1
		}
	}
	return repo
}

func (f *fakeListingRepo) Create(_ context.Context, listing *domain.Listing) (*domain.Listing, error) {
	listing.ID = f.nextID
	f.nextID++
	copied := *listing
	f.listings[listing.ID] = &copied
	return listing, nil
}

func (f *fakeListingRepo) GetByID(_ context.Context, id int64) (*domain.Listing, error) {
	l, ok := f.listings[id]
	if !ok {
		return nil, listingRepo.ErrListingNotFound
	}
	copied := *l
	return &copied, nil
}

func (f *fakeListingRepo) List(_ context.Context, filter domain.ListingFilter) ([]*domain.Listing, error) {
	var out []*domain.Listing
	for _, l := range f.listings {
		if filter.ActiveOnly && !l.Active {
			continue
		}
		if filter.PropertyType != nil && l.PropertyType != *filter.PropertyType {
			continue
		}
		if filter.MaxPrice != nil && l.Price > *filter.MaxPrice {
			continue
		}
		if filter.OwnerID != nil && l.OwnerID != *filter.OwnerID {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeListingRepo) Update(_ context.Context, listing *domain.Listing) error {
	if _, ok := f.listings[listing.ID]; !ok {
		return listingRepo.ErrListingNotFound
	}
	copied := *listing
	f.listings[listing.ID] = &copied
	return nil
}

func (f *fakeListingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.listings[id]; !ok {
		return listingRepo.ErrListingNotFound
	}
	delete(f.listings, id)
	return nil
}

type fakeCache struct {
	entries     map[int64]*domain.Listing
	invalidated []int64
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[int64]*domain.Listing)}
}

func (f *fakeCache) Get(_ context.Context, id int64) (*domain.Listing, error) {
	if l, ok := f.entries[id]; ok {
		return l, nil
	}
	return nil, cachepkg.ErrCacheMiss
}

func (f *fakeCache) Set(_ context.Context, listing *domain.Listing) error {
	f.entries[listing.ID] = listing
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, id int64) error {
	delete(f.entries, id)
	f.invalidated = append(f.invalidated, id)
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Fixtures

const (
	renterID = int64(1)
	ownerID  = int64(2)
	adminID  = int64(3)
)

func fixtureUsers() *fakeUsers {
	return &fakeUsers{users: map[int64]*domain.User{
		renterID: {ID: renterID, Role: domain.RoleUser},
		ownerID:  {ID: ownerID, Role: domain.RoleOwner},
		adminID:  {ID: adminID, Role: domain.RoleAdmin},
	}}
}

func fixtureListing() *domain.Listing {
	return &domain.Listing{
		ID:           10,
		Title:        "Sunny PG near campus",
		Slug:         "sunny-pg-near-campus",
		Address:      "12 College Road",
		Price:        9000,
		PropertyType: domain.PropertyPG,
		Active:       true,
		OwnerID:      ownerID,
	}
}

func validCreateRequest(userID int64) *models.CreateListingRequest {
	return &models.CreateListingRequest{
		UserID:       userID,
		Title:        "Cozy Flat Near Metro!",
		Description:  "Two rooms, balcony.",
		Address:      "5 Metro Lane",
		Price:        12000,
		PropertyType: "Flat",
		Bedrooms:     2,
		Bathrooms:    1,
	}
}

// Tests

func TestCreateListing(t *testing.T) {
	t.Run("owner creates listing with derived slug", func(t *testing.T) {
		repo := newFakeListingRepo()
		svc := NewService(repo, nil, fixtureUsers(), nopLogger{})

		resp, err := svc.Create(context.Background(), validCreateRequest(ownerID))
		require.NoError(t, err)
		assert.Equal(t, "cozy-flat-near-metro", resp.Slug)
		assert.True(t, resp.Active)
		assert.Equal(t, ownerID, resp.OwnerID)
	})

	t.Run("plain user may not publish", func(t *testing.T) {
		svc := NewService(newFakeListingRepo(), nil, fixtureUsers(), nopLogger{})

		_, err := svc.Create(context.Background(), validCreateRequest(renterID))
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("invalid data is rejected", func(t *testing.T) {
		svc := NewService(newFakeListingRepo(), nil, fixtureUsers(), nopLogger{})
		ctx := context.Background()

		bad := validCreateRequest(ownerID)
		bad.Price = 0
		_, err := svc.Create(ctx, bad)
		assert.ErrorIs(t, err, ErrInvalidInput)

		bad = validCreateRequest(ownerID)
		bad.PropertyType = "Castle"
		_, err = svc.Create(ctx, bad)
		assert.ErrorIs(t, err, ErrInvalidInput)

		bad = validCreateRequest(ownerID)
		bad.DiscountedPrice = ptr.Ptr(15000.0) // above the price
		_, err = svc.Create(ctx, bad)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGetByIDReadThrough(t *testing.T) {
	repo := newFakeListingRepo(fixtureListing())
	cache := newFakeCache()
	svc := NewService(repo, cache, fixtureUsers(), nopLogger{})
	ctx := context.Background()

	// first read populates the cache
	resp, err := svc.GetByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "Sunny PG near campus", resp.Title)
	assert.Contains(t, cache.entries, int64(10))

	// second read is served from the cache even after the row disappears
	delete(repo.listings, 10)
	resp, err = svc.GetByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)

	_, err = svc.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestUpdateListing(t *testing.T) {
	t.Run("owner edits and cache is invalidated", func(t *testing.T) {
		repo := newFakeListingRepo(fixtureListing())
		cache := newFakeCache()
		svc := NewService(repo, cache, fixtureUsers(), nopLogger{})

		resp, err := svc.Update(context.Background(), 10, &models.UpdateListingRequest{
			UserID: ownerID,
			Title:  ptr.Ptr("Renovated PG near campus"),
			Price:  ptr.Ptr(9500.0),
		})
		require.NoError(t, err)
		assert.Equal(t, "renovated-pg-near-campus", resp.Slug)
		assert.Equal(t, 9500.0, resp.Price)
		assert.Equal(t, []int64{10}, cache.invalidated)
	})

	t.Run("admin may edit someone else's listing", func(t *testing.T) {
		repo := newFakeListingRepo(fixtureListing())
		svc := NewService(repo, nil, fixtureUsers(), nopLogger{})

		_, err := svc.Update(context.Background(), 10, &models.UpdateListingRequest{
			UserID: adminID,
			Active: ptr.Ptr(false),
		})
		require.NoError(t, err)
		assert.False(t, repo.listings[10].Active)
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		svc := NewService(newFakeListingRepo(fixtureListing()), nil, fixtureUsers(), nopLogger{})

		_, err := svc.Update(context.Background(), 10, &models.UpdateListingRequest{
			UserID: renterID,
			Title:  ptr.Ptr("Hijacked"),
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestDeleteListing(t *testing.T) {
	repo := newFakeListingRepo(fixtureListing())
	cache := newFakeCache()
	svc := NewService(repo, cache, fixtureUsers(), nopLogger{})
	ctx := context.Background()

	err := svc.Delete(ctx, 10, renterID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	require.NoError(t, svc.Delete(ctx, 10, ownerID))
	assert.NotContains(t, repo.listings, int64(10))
	assert.Equal(t, []int64{10}, cache.invalidated)

	err = svc.Delete(ctx, 10, ownerID)
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestListFilter(t *testing.T) {
	active := fixtureListing()
	inactive := fixtureListing()
	inactive.ID = 11
	inactive.Active = false
	flat := fixtureListing()
	flat.ID = 12
	flat.PropertyType = domain.PropertyFlat
	flat.Price = 15000

	repo := newFakeListingRepo(active, inactive, flat)
	svc := NewService(repo, nil, fixtureUsers(), nopLogger{})
	ctx := context.Background()

	activeOnly, err := svc.List(ctx, &models.ListListingsRequest{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, activeOnly.Listings, 2)

	cheapPGs, err := svc.List(ctx, &models.ListListingsRequest{
		PropertyType: ptr.Ptr("PG"),
		MaxPrice:     ptr.Ptr(10000.0),
		ActiveOnly:   true,
	})
	require.NoError(t, err)
	require.Len(t, cheapPGs.Listings, 1)
	assert.Equal(t, int64(10), cheapPGs.Listings[0].ID)

	_, err = svc.List(ctx, &models.ListListingsRequest{PropertyType: ptr.Ptr("Castle")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
