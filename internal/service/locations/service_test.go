package locations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomsonrent/rental-service/internal/domain"
	locationRepo "github.com/roomsonrent/rental-service/internal/infra/storage/location"
	userRepo "github.com/roomsonrent/rental-service/internal/infra/storage/user"
	"github.com/roomsonrent/rental-service/internal/service/locations/models"
)

// Fakes

type fakeLocationRepo struct {
	locations map[int64]*domain.Location
	byName    map[string]int64
	nextID    int64
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{
		locations: make(map[int64]*domain.Location),
		byName:    make(map[string]int64),
		nextID:    1,
	}
}

func (f *fakeLocationRepo) Create(_ context.Context, loc *domain.Location) (*domain.Location, error) {
	if _, exists := f.byName[loc.Name]; exists {
		return nil, locationRepo.ErrDuplicateLocation
	}
	loc.ID = f.nextID
	f.nextID++
	copied := *loc
	f.locations[loc.ID] = &copied
	f.byName[loc.Name] = loc.ID
	return loc, nil
}

func (f *fakeLocationRepo) GetByID(_ context.Context, id int64) (*domain.Location, error) {
	loc, ok := f.locations[id]
	if !ok {
		return nil, locationRepo.ErrLocationNotFound
	}
	copied := *loc
	return &copied, nil
}

func (f *fakeLocationRepo) List(_ context.Context) ([]*domain.Location, error) {
	out := make([]*domain.Location, 0, len(f.locations))
	for _, loc := range f.locations {
		copied := *loc
		out = append(out, &copied)
	}
	return out, nil
}

type fakeUsers struct {
	users map[int64]*domain.User
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const (
	adminID = int64(1)
	ownerID = int64(2)
)

func newTestService() (*Service, *fakeLocationRepo) {
	repo := newFakeLocationRepo()
	users := &fakeUsers{users: map[int64]*domain.User{
		adminID: {ID: adminID, Name: "Asha", Role: domain.RoleAdmin},
		ownerID: {ID: ownerID, Name: "Priya", Role: domain.RoleOwner},
	}}
	return NewService(repo, users, nopLogger{}), repo
}

// Tests

func TestCreateLocation(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Create(context.Background(), &models.CreateLocationRequest{
		UserID:  adminID,
		Name:    "Hauz Khas Village",
		City:    "New Delhi",
		State:   "Delhi",
		Country: "India",
		Popular: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Hauz Khas Village", resp.Name)
	assert.Equal(t, "hauz-khas-village", resp.Slug)
	assert.True(t, resp.Popular)
}

func TestCreateLocationAdminOnly(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), &models.CreateLocationRequest{
		UserID: ownerID,
		Name:   "Koramangala",
		City:   "Bengaluru",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreateLocationValidation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), &models.CreateLocationRequest{
		UserID: adminID,
		Name:   "",
		City:   "Pune",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateLocationRequest{
		UserID: adminID,
		Name:   "Viman Nagar",
		City:   "",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateLocationDuplicate(t *testing.T) {
	svc, _ := newTestService()

	req := &models.CreateLocationRequest{UserID: adminID, Name: "Andheri West", City: "Mumbai"}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuplicateLocation)
}

func TestGetLocationByID(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), &models.CreateLocationRequest{
		UserID: adminID, Name: "Indiranagar", City: "Bengaluru",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)

	_, err = svc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestListLocations(t *testing.T) {
	svc, _ := newTestService()

	for _, name := range []string{"Bandra", "Juhu", "Powai"} {
		_, err := svc.Create(context.Background(), &models.CreateLocationRequest{
			UserID: adminID, Name: name, City: "Mumbai",
		})
		require.NoError(t, err)
	}

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Locations, 3)
}
