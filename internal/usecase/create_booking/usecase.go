package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/roomsonrent/rental-service/internal/domain"
	bookingRepo "github.com/roomsonrent/rental-service/internal/infra/storage/booking"
	listingRepo "github.com/roomsonrent/rental-service/internal/infra/storage/listing"
	"github.com/roomsonrent/rental-service/internal/integrations/mailer"
)

// UseCase creates a booking. The availability check and the insert run in
// one serializable transaction with the listing's blocking bookings locked,
// so two concurrent requests for overlapping dates cannot both succeed.
type UseCase struct {
	bookingRepo  BookingRepository
	listingRepo  ListingRepository
	users        UserProvider
	mailer       Mailer
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the booking creation use case. The mailer may be nil
// when notifications are disabled.
func NewUseCase(
	bookingRepo BookingRepository,
	listingRepo ListingRepository,
	users UserProvider,
	m Mailer,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		listingRepo:  listingRepo,
		users:        users,
		mailer:       m,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the booking creation workflow
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, listing=%d, checkIn=%s, checkOut=%s, guests=%d",
		req.UserID, req.ListingID,
		req.CheckInDate.Format(domain.DateFormat), req.CheckOutDate.Format(domain.DateFormat), req.Guests)

	// 1. Structural validation
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Date range validation
	now := uc.timeProvider.Now()
	if err := validateDates(req, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Fetch the listing; it must exist and accept bookings
	listing, err := uc.listingRepo.GetByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			uc.logger.Warn("CreateBooking: listing id=%d not found", req.ListingID)
			return nil, ErrListingNotFound
		}
		uc.logger.Error("CreateBooking: failed to get listing id=%d: %v", req.ListingID, err)
		return nil, fmt.Errorf("%w: failed to get listing: %v", ErrInternal, err)
	}

	if !listing.Active {
		uc.logger.Warn("CreateBooking: listing id=%d is not active", req.ListingID)
		return nil, ErrListingNotActive
	}

	// 4. Price the stay from the listing's base monthly rate. The
	// discounted price is display-only and never enters the amount.
	durationDays := domain.StayDurationDays(req.CheckInDate, req.CheckOutDate)
	amount := domain.ProratedAmount(listing.Price, durationDays)

	var result *domain.Booking

	// 5. Availability check and insert in one serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Load the listing's blocking bookings with row locks
		blocking, err := uc.bookingRepo.FindBlocking(txCtx, req.ListingID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blocking bookings: %v", err)
			return fmt.Errorf("%w: failed to get blocking bookings: %v", ErrInternal, err)
		}

		// 5.2. Inclusive overlap check; back-to-back stays count as overlap
		for _, existing := range blocking {
			if existing.OverlapsRange(req.CheckInDate, req.CheckOutDate) {
				uc.logger.Warn("CreateBooking: dates overlap booking id=%d on listing id=%d",
					existing.ID, req.ListingID)
				return ErrDatesNotAvailable
			}
		}

		// 5.3. Insert the booking
		booking := &domain.Booking{
			ListingID:       req.ListingID,
			UserID:          req.UserID,
			OwnerID:         listing.OwnerID,
			CheckInDate:     req.CheckInDate,
			CheckOutDate:    req.CheckOutDate,
			DurationDays:    durationDays,
			Amount:          amount,
			Guests:          req.Guests,
			Status:          domain.StatusPending,
			PaymentStatus:   domain.PaymentPending,
			PaymentMethod:   req.PaymentMethod,
			SpecialRequests: req.SpecialRequests,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
				uc.logger.Warn("CreateBooking: duplicate booking for user=%d on listing=%d",
					req.UserID, req.ListingID)
				return ErrDuplicateBooking
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, amount=%d for %d days",
		result.ID, result.Amount, result.DurationDays)

	// 6. Notify the owner, best effort
	uc.notifyOwner(ctx, result, listing)

	return &Response{
		ID:              result.ID,
		ListingID:       result.ListingID,
		UserID:          result.UserID,
		OwnerID:         result.OwnerID,
		CheckInDate:     result.CheckInDate,
		CheckOutDate:    result.CheckOutDate,
		DurationDays:    result.DurationDays,
		Amount:          result.Amount,
		Guests:          result.Guests,
		Status:          string(result.Status),
		PaymentStatus:   string(result.PaymentStatus),
		PaymentMethod:   result.PaymentMethod,
		SpecialRequests: result.SpecialRequests,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// notifyOwner emails the listing owner about the new request. Lookup or
// send failures are logged, never returned.
func (uc *UseCase) notifyOwner(ctx context.Context, booking *domain.Booking, listing *domain.Listing) {
	if uc.mailer == nil {
		return
	}

	owner, err := uc.users.GetByID(ctx, listing.OwnerID)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to get owner id=%d for notification: %v", listing.OwnerID, err)
		return
	}

	notification := mailer.BookingNotification{
		RecipientEmail: owner.Email,
		RecipientName:  owner.Name,
		ListingTitle:   listing.Title,
		CheckInDate:    booking.CheckInDate,
		CheckOutDate:   booking.CheckOutDate,
		Amount:         booking.Amount,
		Status:         string(booking.Status),
	}

	if err := uc.mailer.SendBookingRequested(notification); err != nil {
		uc.logger.Warn("CreateBooking: failed to notify owner id=%d for booking id=%d: %v",
			listing.OwnerID, booking.ID, err)
	}
}
