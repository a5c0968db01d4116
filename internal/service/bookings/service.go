package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/roomsonrent/rental-service/internal/domain"
	bookingRepo "github.com/roomsonrent/rental-service/internal/infra/storage/booking"
	userRepo "github.com/roomsonrent/rental-service/internal/infra/storage/user"
	"github.com/roomsonrent/rental-service/internal/integrations/mailer"
	"github.com/roomsonrent/rental-service/internal/service/bookings/models"
)

// Service handles reads and mutations on existing bookings. Creation runs
// through its own workflow because of the availability transaction.
type Service struct {
	bookingRepo BookingRepository
	listings    ListingProvider
	users       UserProvider
	mailer      Mailer
	transitions domain.TransitionTable
	logger      Logger
}

// NewService creates a bookings service. The mailer may be nil when
// notifications are disabled.
func NewService(
	bookingRepo BookingRepository,
	listings ListingProvider,
	users UserProvider,
	m Mailer,
	transitions domain.TransitionTable,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		listings:    listings,
		users:       users,
		mailer:      m,
		transitions: transitions,
		logger:      logger,
	}
}

// GetByID fetches a booking by ID. Visible to the renter who made it, the
// owner of the listed property, and admins.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.fetchBooking(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if booking.UserID != userID && booking.OwnerID != userID {
		admin, err := s.isAdmin(ctx, userID)
		if err != nil {
			return nil, err
		}
		if !admin {
			s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
			return nil, ErrAccessDenied
		}
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings fetches a renter's booking history, newest first,
// optionally filtered by status.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	filter := domain.UserBookingsFilter{UserID: req.UserID}
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, ErrInvalidStatus
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.GetByUser(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetOwnerBookings fetches bookings across the listings an owner holds,
// optionally narrowed to one listing or one status.
func (s *Service) GetOwnerBookings(ctx context.Context, req *models.GetOwnerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetOwnerBookings: fetching bookings for owner=%d", req.UserID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetOwnerBookings: invalid status filter for owner=%d: %v", req.UserID, err)
		return nil, ErrInvalidStatus
	}

	bookings, err := s.bookingRepo.GetByOwner(ctx, filter)
	if err != nil {
		s.logger.Error("GetOwnerBookings: repository error for owner=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetOwnerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOwnerBookings: fetched %d bookings for owner=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Update edits the mutable fields of a booking. Only the renter or an admin
// may edit, and only while the booking is unlocked (not confirmed or
// completed). Duration and amount stay as computed at creation, even when
// the dates move.
func (s *Service) Update(ctx context.Context, bookingID int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.fetchBooking(ctx, bookingID, "Update")
	if err != nil {
		return nil, err
	}

	// The lock check comes before authorization: a locked booking reports
	// locked even to its renter.
	if booking.IsLocked() {
		s.logger.Warn("Update: booking id=%d is locked, status=%s", bookingID, booking.Status)
		return nil, ErrBookingLocked
	}

	if err := s.checkMutationAccess(ctx, booking, req.UserID, "Update"); err != nil {
		return nil, err
	}

	if req.CheckInDate != nil {
		booking.CheckInDate = *req.CheckInDate
	}
	if req.CheckOutDate != nil {
		booking.CheckOutDate = *req.CheckOutDate
	}
	if booking.CheckOutDate.Before(booking.CheckInDate) || booking.CheckOutDate.Equal(booking.CheckInDate) {
		s.logger.Warn("Update: invalid date range for booking id=%d", bookingID)
		return nil, fmt.Errorf("%w: check-out must be after check-in", ErrInvalidInput)
	}

	if req.Guests != nil {
		if *req.Guests < domain.MinGuests || *req.Guests > domain.MaxGuests {
			s.logger.Warn("Update: invalid guest count %d for booking id=%d", *req.Guests, bookingID)
			return nil, fmt.Errorf("%w: guests must be between %d and %d", ErrInvalidInput, domain.MinGuests, domain.MaxGuests)
		}
		booking.Guests = *req.Guests
	}
	if req.SpecialRequests != nil {
		if len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
			return nil, fmt.Errorf("%w: special requests too long", ErrInvalidInput)
		}
		booking.SpecialRequests = req.SpecialRequests
	}
	if req.PaymentMethod != nil {
		booking.PaymentMethod = req.PaymentMethod
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated booking id=%d", bookingID)
	return models.FromDomainBooking(booking), nil
}

// Delete removes a booking. Only the renter or an admin may delete, and only
// while the booking is unlocked.
func (s *Service) Delete(ctx context.Context, bookingID int64, userID int64) error {
	s.logger.Info("Delete: deleting booking id=%d by user=%d", bookingID, userID)

	booking, err := s.fetchBooking(ctx, bookingID, "Delete")
	if err != nil {
		return err
	}

	if booking.IsLocked() {
		s.logger.Warn("Delete: booking id=%d is locked, status=%s", bookingID, booking.Status)
		return ErrBookingLocked
	}

	if err := s.checkMutationAccess(ctx, booking, userID, "Delete"); err != nil {
		return err
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", bookingID)
	return nil
}

// UpdateStatus changes a booking's status. Only the listing owner or an
// admin may transition a booking, and the change must be permitted by the
// configured transition table. On success the renter is notified by email;
// notification failures are logged and swallowed.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d", bookingID, req.Status, req.UserID)

	booking, err := s.fetchBooking(ctx, bookingID, "UpdateStatus")
	if err != nil {
		return nil, err
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, ErrInvalidStatus
	}

	if booking.OwnerID != req.UserID {
		admin, err := s.isAdmin(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
		if !admin {
			s.logger.Warn("UpdateStatus: access denied for user=%d to booking id=%d", req.UserID, bookingID)
			return nil, ErrAccessDenied
		}
	}

	if !s.transitions.Allows(booking.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%d",
			booking.Status, newStatus, bookingID)
		return nil, ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = newStatus
	s.notifyStatusChanged(ctx, booking)

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(booking), nil
}

// Helpers

func (s *Service) fetchBooking(ctx context.Context, id int64, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// checkMutationAccess allows the renter who made the booking and admins
func (s *Service) checkMutationAccess(ctx context.Context, booking *domain.Booking, userID int64, op string) error {
	if booking.UserID == userID {
		return nil
	}

	admin, err := s.isAdmin(ctx, userID)
	if err != nil {
		return err
	}
	if !admin {
		s.logger.Warn("%s: access denied for user=%d to booking id=%d", op, userID, booking.ID)
		return ErrAccessDenied
	}
	return nil
}

func (s *Service) isAdmin(ctx context.Context, userID int64) (bool, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return false, nil
		}
		s.logger.Error("isAdmin: failed to get user id=%d: %v", userID, err)
		return false, fmt.Errorf("%w: isAdmin - failed to get user: %v", ErrInternal, err)
	}
	return user.IsAdmin(), nil
}

// notifyStatusChanged emails the renter about the new status. Best effort:
// lookup or send failures are logged, never returned.
func (s *Service) notifyStatusChanged(ctx context.Context, booking *domain.Booking) {
	if s.mailer == nil {
		return
	}

	renter, err := s.users.GetByID(ctx, booking.UserID)
	if err != nil {
		s.logger.Warn("notifyStatusChanged: failed to get renter id=%d: %v", booking.UserID, err)
		return
	}

	listing, err := s.listings.GetByID(ctx, booking.ListingID)
	if err != nil {
		s.logger.Warn("notifyStatusChanged: failed to get listing id=%d: %v", booking.ListingID, err)
		return
	}

	notification := mailer.BookingNotification{
		RecipientEmail: renter.Email,
		RecipientName:  renter.Name,
		ListingTitle:   listing.Title,
		CheckInDate:    booking.CheckInDate,
		CheckOutDate:   booking.CheckOutDate,
		Amount:         booking.Amount,
		Status:         string(booking.Status),
	}

	if err := s.mailer.SendStatusChanged(notification); err != nil {
		s.logger.Warn("notifyStatusChanged: failed to notify renter id=%d for booking id=%d: %v",
			booking.UserID, booking.ID, err)
	}
}
