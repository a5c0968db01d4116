package create_booking

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
)

// Fakes

type fakeBookingRepo struct {
	bookings []*domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	for _, existing := range f.bookings {
		if existing.UserID == booking.UserID &&
			existing.ListingID == booking.ListingID &&
			existing.CheckInDate.Equal(booking.CheckInDate) &&
			existing.CheckOutDate.Equal(booking.CheckOutDate) {
			return nil, bookingRepo.ErrDuplicateBooking
		}
	}
	f.nextID++
	booking.ID = f.nextID
	f.bookings = append(f.bookings, booking)
	return booking, nil
}

func (f *fakeBookingRepo) FindBlocking(_ context.Context, listingID int64) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.ListingID == listingID && b.BlocksDates() {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeListingRepo struct {
	listings map[int64]*domain.Listing
}

func (f *fakeListingRepo) GetByID(_ context.Context, id int64) (*domain.Listing, error) {
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

func (f *fakeMailer) SendBookingRequested(n mailer.BookingNotification) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, n)
	return nil
}

// passthroughTx satisfies TransactionManager without a database
type passthroughTx struct {
	calls int
}

func (f *passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Fixtures

const (
	renterID = int64(1)
	ownerID  = int64(2)
)

var today = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return today.AddDate(0, 0, n)
}

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	mailer   *fakeMailer
	tx       *passthroughTx
}

func newFixture() *fixture {
	bookings := &fakeBookingRepo{}
	listings := &fakeListingRepo{listings: map[int64]*domain.Listing{
		10: {ID: 10, Title: "Sunny PG near campus", Price: 9000, Active: true, OwnerID: ownerID},
		11: {ID: 11, Title: "Closed hostel", Price: 5000, Active: false, OwnerID: ownerID},
	}}
	users := &fakeUsers{users: map[int64]*domain.User{
		ownerID: {ID: ownerID, Name: "Priya", Email: "priya@example.com", Role: domain.RoleOwner},
	}}
	sent := &fakeMailer{}
	tx := &passthroughTx{}

	uc := NewUseCase(bookings, listings, users, sent, tx, nopLogger{})
	uc.timeProvider = fixedTime{now: today}

	return &fixture{uc: uc, bookings: bookings, mailer: sent, tx: tx}
}

func request(checkIn, checkOut time.Time) *Request {
	return &Request{
		UserID:       renterID,
		ListingID:    10,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Guests:       2,
	}
}

// Tests

func TestExecuteCreatesBooking(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), request(day(1), day(31)))
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "pending", resp.PaymentStatus)
	assert.Equal(t, 30, resp.DurationDays)
	assert.Equal(t, int64(9000), resp.Amount)
	assert.Equal(t, ownerID, resp.OwnerID)
	assert.Equal(t, 1, f.tx.calls)

	// the owner is notified about the request
	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "priya@example.com", f.mailer.sent[0].RecipientEmail)
	assert.Equal(t, "Sunny PG near campus", f.mailer.sent[0].ListingTitle)
	assert.Equal(t, int64(9000), f.mailer.sent[0].Amount)
}

func TestExecuteProratesPartialMonth(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), request(day(1), day(16)))
	require.NoError(t, err)

	assert.Equal(t, 15, resp.DurationDays)
	assert.Equal(t, int64(4500), resp.Amount)
}

func TestExecuteRejectsOverlap(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, request(day(1), day(11)))
	require.NoError(t, err)

	// fully inside the existing stay
	other := request(day(3), day(8))
	other.UserID = 99
	_, err = f.uc.Execute(ctx, other)
	assert.ErrorIs(t, err, ErrDatesNotAvailable)

	// back-to-back on the existing check-out day also counts
	backToBack := request(day(11), day(20))
	backToBack.UserID = 99
	_, err = f.uc.Execute(ctx, backToBack)
	assert.ErrorIs(t, err, ErrDatesNotAvailable)
}

func TestExecuteCancelledBookingsReleaseDates(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, request(day(1), day(11)))
	require.NoError(t, err)
	f.bookings.bookings[0].Status = domain.StatusCancelled

	other := request(day(3), day(8))
	other.UserID = 99
	_, err = f.uc.Execute(ctx, other)
	assert.NoError(t, err)
}

func TestExecuteRejectsDuplicate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, request(day(1), day(11)))
	require.NoError(t, err)

	// exact resubmission by the same user; the cancelled original no longer
	// blocks dates, so the unique index is what rejects it
	f.bookings.bookings[0].Status = domain.StatusCancelled
	_, err = f.uc.Execute(ctx, request(day(1), day(11)))
	assert.ErrorIs(t, err, ErrDuplicateBooking)
}

func TestExecuteListingChecks(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	unknown := request(day(1), day(11))
	unknown.ListingID = 999
	_, err := f.uc.Execute(ctx, unknown)
	assert.ErrorIs(t, err, ErrListingNotFound)

	inactive := request(day(1), day(11))
	inactive.ListingID = 11
	_, err = f.uc.Execute(ctx, inactive)
	assert.ErrorIs(t, err, ErrListingNotActive)
}

func TestExecuteDateValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// zero-length stay
	_, err := f.uc.Execute(ctx, request(day(1), day(1)))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// inverted range
	_, err = f.uc.Execute(ctx, request(day(10), day(5)))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// check-in before today
	_, err = f.uc.Execute(ctx, request(day(-3), day(5)))
	assert.ErrorIs(t, err, ErrDateInPast)

	// guests out of bounds
	bad := request(day(1), day(11))
	bad.Guests = 0
	_, err = f.uc.Execute(ctx, bad)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteNotificationFailureIsSwallowed(t *testing.T) {
	f := newFixture()
	f.mailer.err = mailer.ErrSendFailed

	resp, err := f.uc.Execute(context.Background(), request(day(1), day(11)))
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
}

func TestExecutePricesFromBaseRate(t *testing.T) {
	f := newFixture()
	discounted := 6000.0
	f.uc.listingRepo.(*fakeListingRepo).listings[10].DiscountedPrice = &discounted

	resp, err := f.uc.Execute(context.Background(), request(day(1), day(31)))
	require.NoError(t, err)
	assert.Equal(t, int64(9000), resp.Amount)
}
