package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomsonrent/rental-service/internal/domain"
	bookingRepo "github.com/roomsonrent/rental-service/internal/infra/storage/booking"
	listingRepo "github.com/roomsonrent/rental-service/internal/infra/storage/listing"
	userRepo "github.com/roomsonrent/rental-service/internal/infra/storage/user"
	"github.com/roomsonrent/rental-service/internal/integrations/mailer"
	"github.com/roomsonrent/rental-service/internal/service/bookings/models"
	"github.com/roomsonrent/rental-service/pkg/ptr"
)

// Fakes

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	deleted  []int64
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetByUser(_ context.Context, filter domain.UserBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.UserID != filter.UserID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByOwner(_ context.Context, filter domain.OwnerBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.OwnerID != filter.OwnerID {
			continue
		}
		if filter.ListingID != nil && b.ListingID != *filter.ListingID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *domain.Booking) error {
	if _, ok := f.bookings[booking.ID]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.bookings, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeListings struct {
	listings map[int64]*domain.Listing
}

func (f *fakeListings) GetByID(_ context.Context, id int64) (*domain.Listing, error) {
	if l, ok := f.listings[id]; ok {
		return l, nil
	}
	return nil, listingRepo.ErrListingNotFound
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

type fakeMailer struct {
	sent []mailer.BookingNotification
	err  error
}

func (f *fakeMailer) SendStatusChanged(n mailer.BookingNotification) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, n)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Fixtures

const (
	renterID   = int64(1)
	ownerID    = int64(2)
	adminID    = int64(3)
	strangerID = int64(4)
)

func fixtureBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:           100,
		ListingID:    10,
		UserID:       renterID,
		OwnerID:      ownerID,
		CheckInDate:  time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		DurationDays: 30,
		Amount:       9000,
		Guests:       2,
		Status:       status,
	}
}

func fixtureUsers() *fakeUsers {
	return &fakeUsers{users: map[int64]*domain.User{
		renterID:   {ID: renterID, Name: "Ravi", Email: "ravi@example.com", Role: domain.RoleUser},
		ownerID:    {ID: ownerID, Name: "Priya", Email: "priya@example.com", Role: domain.RoleOwner},
		adminID:    {ID: adminID, Name: "Admin", Email: "admin@example.com", Role: domain.RoleAdmin},
		strangerID: {ID: strangerID, Name: "Sam", Email: "sam@example.com", Role: domain.RoleUser},
	}}
}

func fixtureListings() *fakeListings {
	return &fakeListings{listings: map[int64]*domain.Listing{
		10: {ID: 10, Title: "Sunny PG near campus", Price: 9000, Active: true, OwnerID: ownerID},
	}}
}

func newTestService(repo *fakeBookingRepo, m Mailer, transitions domain.TransitionTable) *Service {
	return NewService(repo, fixtureListings(), fixtureUsers(), m, transitions, nopLogger{})
}

// Tests

func TestGetByIDAccess(t *testing.T) {
	repo := newFakeBookingRepo(fixtureBooking(domain.StatusPending))
	svc := newTestService(repo, nil, domain.PermissiveTransitions)
	ctx := context.Background()

	for _, id := range []int64{renterID, ownerID, adminID} {
		resp, err := svc.GetByID(ctx, 100, id)
		require.NoError(t, err, "user %d must see the booking", id)
		assert.Equal(t, int64(100), resp.ID)
	}

	_, err := svc.GetByID(ctx, 100, strangerID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(ctx, 999, renterID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateLockedBooking(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusConfirmed, domain.StatusCompleted} {
		repo := newFakeBookingRepo(fixtureBooking(status))
		svc := newTestService(repo, nil, domain.PermissiveTransitions)

		_, err := svc.Update(context.Background(), 100, &models.UpdateBookingRequest{
			UserID: renterID,
			Guests: ptr.Ptr(3),
		})
		assert.ErrorIs(t, err, ErrBookingLocked, "status %s must lock edits", status)
	}
}

func TestUpdatePreservesPricing(t *testing.T) {
	repo := newFakeBookingRepo(fixtureBooking(domain.StatusPending))
	svc := newTestService(repo, nil, domain.PermissiveTransitions)

	// move the stay two weeks later; amount and duration must not change
	newIn := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
	newOut := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	resp, err := svc.Update(context.Background(), 100, &models.UpdateBookingRequest{
		UserID:       renterID,
		CheckInDate:  &newIn,
		CheckOutDate: &newOut,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9000), resp.Amount)
	assert.Equal(t, 30, resp.DurationDays)

	stored := repo.bookings[100]
	assert.Equal(t, newIn, stored.CheckInDate)
	assert.Equal(t, int64(9000), stored.Amount)
	assert.Equal(t, 30, stored.DurationDays)
}

func TestUpdateDoesNotRecheckAvailability(t *testing.T) {
	other := &domain.Booking{
		ID:           101,
		ListingID:    10,
		UserID:       strangerID,
		OwnerID:      ownerID,
		CheckInDate:  time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		DurationDays: 30,
		Amount:       9000,
		Guests:       1,
		Status:       domain.StatusPending,
	}
	repo := newFakeBookingRepo(fixtureBooking(domain.StatusPending), other)
	svc := newTestService(repo, nil, domain.PermissiveTransitions)

	// move the stay squarely onto the other booking's range; edits are
	// validated for shape only, overlap is enforced at creation time
	newIn := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	newOut := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)

	resp, err := svc.Update(context.Background(), 100, &models.UpdateBookingRequest{
		UserID:       renterID,
		CheckInDate:  &newIn,
		CheckOutDate: &newOut,
	})
	require.NoError(t, err)
	assert.Equal(t, newIn, repo.bookings[100].CheckInDate)
	assert.Equal(t, newOut, repo.bookings[100].CheckOutDate)
	assert.Equal(t, int64(9000), resp.Amount)
}

func TestUpdateValidation(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(fixtureBooking(domain.StatusPending)), nil, domain.PermissiveTransitions)
	ctx := context.Background()

	// inverted date range
	newIn := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	newOut := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Update(ctx, 100, &models.UpdateBookingRequest{
		UserID:       renterID,
		CheckInDate:  &newIn,
		CheckOutDate: &newOut,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// guest count out of bounds
	_, err = svc.Update(ctx, 100, &models.UpdateBookingRequest{UserID: renterID, Guests: ptr.Ptr(0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// stranger cannot edit
	_, err = svc.Update(ctx, 100, &models.UpdateBookingRequest{UserID: strangerID, Guests: ptr.Ptr(3)})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestDelete(t *testing.T) {
	t.Run("renter deletes pending booking", func(t *testing.T) {
		repo := newFakeBookingRepo(fixtureBooking(domain.StatusPending))
		svc := newTestService(repo, nil, domain.PermissiveTransitions)

		require.NoError(t, svc.Delete(context.Background(), 100, renterID))
		assert.Equal(t, []int64{100}, repo.deleted)
	})

	t.Run("confirmed booking is locked for everyone", func(t *testing.T) {
		repo := newFakeBookingRepo(fixtureBooking(domain.StatusConfirmed))
		svc := newTestService(repo, nil, domain.PermissiveTransitions)
		ctx := context.Background()

		for _, id := range []int64{renterID, ownerID, adminID} {
			err := svc.Delete(ctx, 100, id)
			assert.ErrorIs(t, err, ErrBookingLocked, "user %d", id)
		}
		assert.Empty(t, repo.deleted)
	})

	t.Run("admin deletes cancelled booking", func(t *testing.T) {
		repo := newFakeBookingRepo(fixtureBooking(domain.StatusCancelled))
		svc := newTestService(repo, nil, domain.PermissiveTransitions)

		require.NoError(t, svc.Delete(context.Background(), 100, adminID))
	})

	t.Run("stranger is denied", func(t *testing.T) {
		repo := newFakeBookingRepo(fixtureBooking(domain.StatusPending))
		svc := newTestService(repo, nil, domain.PermissiveTransitions)

		err := svc.Delete(context.Background(), 100, strangerID)
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Empty(t, repo.deleted)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("owner confirms and renter is notified", func(t *testing.T) {
		repo := newFakeBookingRepo(fixtureBooking(domain.StatusPending))
		sent := &fakeMailer{}
		svc := newTestService(repo, sent, domain.PermissiveTransitions)

		resp, err := svc.UpdateStatus(context.Background(), 100, &models.UpdateStatusRequest{
			UserID: ownerID,
			Status: "confirmed",
		})
		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
		assert.Equal(t, domain.StatusConfirmed, repo.bookings[100].Status)

		require.Len(t, sent.sent, 1)
		assert.Equal(t, "ravi@example.com", sent.sent[0].RecipientEmail)
		assert.Equal(t, "Sunny PG near campus", sent.sent[0].ListingTitle)
		assert.Equal(t, "confirmed", sent.sent[0].Status)
	})

	t.Run("renter cannot change status", func(t *testing.T) {
		repo := newFakeBookingRepo(fixtureBooking(domain.StatusPending))
		svc := newTestService(repo, nil, domain.PermissiveTransitions)

		_, err := svc.UpdateStatus(context.Background(), 100, &models.UpdateStatusRequest{
			UserID: renterID,
			Status: "confirmed",
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Equal(t, domain.StatusPending, repo.bookings[100].Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		svc := newTestService(newFakeBookingRepo(fixtureBooking(domain.StatusPending)), nil, domain.PermissiveTransitions)

		_, err := svc.UpdateStatus(context.Background(), 100, &models.UpdateStatusRequest{
			UserID: ownerID,
			Status: "archived",
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("strict table blocks pending to completed", func(t *testing.T) {
		repo := newFakeBookingRepo(fixtureBooking(domain.StatusPending))
		svc := newTestService(repo, nil, domain.StrictTransitions)

		_, err := svc.UpdateStatus(context.Background(), 100, &models.UpdateStatusRequest{
			UserID: ownerID,
			Status: "completed",
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, domain.StatusPending, repo.bookings[100].Status)
	})

	t.Run("notification failure does not fail the transition", func(t *testing.T) {
		repo := newFakeBookingRepo(fixtureBooking(domain.StatusPending))
		failing := &fakeMailer{err: mailer.ErrSendFailed}
		svc := newTestService(repo, failing, domain.PermissiveTransitions)

		resp, err := svc.UpdateStatus(context.Background(), 100, &models.UpdateStatusRequest{
			UserID: ownerID,
			Status: "cancelled",
		})
		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
		assert.Equal(t, domain.StatusCancelled, repo.bookings[100].Status)
	})
}

func TestGetUserBookingsStatusFilter(t *testing.T) {
	pending := fixtureBooking(domain.StatusPending)
	cancelled := fixtureBooking(domain.StatusCancelled)
	cancelled.ID = 101
	repo := newFakeBookingRepo(pending, cancelled)
	svc := newTestService(repo, nil, domain.PermissiveTransitions)
	ctx := context.Background()

	all, err := svc.GetUserBookings(ctx, &models.GetUserBookingsRequest{UserID: renterID})
	require.NoError(t, err)
	assert.Len(t, all.Bookings, 2)

	onlyPending, err := svc.GetUserBookings(ctx, &models.GetUserBookingsRequest{
		UserID: renterID,
		Status: ptr.Ptr("pending"),
	})
	require.NoError(t, err)
	require.Len(t, onlyPending.Bookings, 1)
	assert.Equal(t, "pending", onlyPending.Bookings[0].Status)

	_, err = svc.GetUserBookings(ctx, &models.GetUserBookingsRequest{
		UserID: renterID,
		Status: ptr.Ptr("archived"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetOwnerBookingsFilter(t *testing.T) {
	first := fixtureBooking(domain.StatusPending)
	second := fixtureBooking(domain.StatusConfirmed)
	second.ID = 101
	second.ListingID = 11
	repo := newFakeBookingRepo(first, second)
	svc := newTestService(repo, nil, domain.PermissiveTransitions)
	ctx := context.Background()

	all, err := svc.GetOwnerBookings(ctx, &models.GetOwnerBookingsRequest{UserID: ownerID})
	require.NoError(t, err)
	assert.Len(t, all.Bookings, 2)

	oneListing, err := svc.GetOwnerBookings(ctx, &models.GetOwnerBookingsRequest{
		UserID:    ownerID,
		ListingID: ptr.Ptr(int64(11)),
	})
	require.NoError(t, err)
	require.Len(t, oneListing.Bookings, 1)
	assert.Equal(t, int64(101), oneListing.Bookings[0].ID)
}
