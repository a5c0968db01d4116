package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/roomsonrent/rental-service/internal/domain"
	listingRepo "github.com/roomsonrent/rental-service/internal/infra/storage/listing"
)

// UseCase answers whether a listing is free for a date range. Cancelled
// bookings release their dates; everything else blocks, with inclusive
// boundaries. The probe is read-only and side-effect free.
type UseCase struct {
	bookingRepo BookingRepository
	listingRepo ListingRepository
	logger      Logger
}

// NewUseCase creates the availability check use case
func NewUseCase(bookingRepo BookingRepository, listingRepo ListingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		logger:      logger,
	}
}

// Execute runs the availability probe
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: listing=%d, checkIn=%s, checkOut=%s",
		req.ListingID,
		req.CheckInDate.Format(domain.DateFormat), req.CheckOutDate.Format(domain.DateFormat))

	if req.ListingID <= 0 {
		return nil, fmt.Errorf("%w: listingID must be positive", ErrInvalidInput)
	}
	if req.CheckInDate.IsZero() || req.CheckOutDate.IsZero() {
		return nil, fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidInput)
	}

	if _, err := uc.listingRepo.GetByID(ctx, req.ListingID); err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			uc.logger.Warn("CheckAvailability: listing id=%d not found", req.ListingID)
			return nil, ErrListingNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get listing id=%d: %v", req.ListingID, err)
		return nil, fmt.Errorf("%w: failed to get listing: %v", ErrInternal, err)
	}

	blocking, err := uc.bookingRepo.FindBlocking(ctx, req.ListingID)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get blocking bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocking bookings: %v", ErrInternal, err)
	}

	available := true
	for _, existing := range blocking {
		if existing.OverlapsRange(req.CheckInDate, req.CheckOutDate) {
			available = false
			break
		}
	}

	uc.logger.Info("CheckAvailability: listing=%d available=%t", req.ListingID, available)

	return &Response{
		ListingID:    req.ListingID,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Available:    available,
	}, nil
}
