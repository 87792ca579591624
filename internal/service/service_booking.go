package service

import (
	"context"
	"fmt"

	"github.com/littlelemon/restaurant-server/internal/logger"
	"github.com/littlelemon/restaurant-server/internal/store"
	"github.com/littlelemon/restaurant-server/models"
)

// bookingService is the concrete implementation of BookingService. It
// validates incoming reservations and delegates persistence to a
// BookingRepository.
type bookingService struct {
	bookingRepository store.BookingRepository
	logger            *logger.Logger
}

// NewBookingService constructs a BookingService wired to the given repository.
func NewBookingService(bookingRepository store.BookingRepository, logger *logger.Logger) BookingService {
	return &bookingService{
		bookingRepository: bookingRepository,
		logger:            logger,
	}
}

func (s *bookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.bookingRepository.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing bookings failed: %w", err)
	}

	return bookings, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id int64) (models.Booking, error) {
	booking, err := s.bookingRepository.GetBooking(ctx, id)
	if err != nil {
		return models.Booking{}, fmt.Errorf("getting booking failed: %w", err)
	}

	return booking, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	log := logger.FromContext(ctx)

	if err := validateBooking(booking); err != nil {
		log.Err(err).Any("booking", booking).Msg("invalid booking provided")
		return models.Booking{}, err
	}

	created, err := s.bookingRepository.CreateBooking(ctx, booking)
	if err != nil {
		return models.Booking{}, fmt.Errorf("creating booking failed: %w", err)
	}

	return created, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	log := logger.FromContext(ctx)

	if err := validateBooking(booking); err != nil {
		log.Err(err).Any("booking", booking).Msg("invalid booking provided")
		return models.Booking{}, err
	}

	updated, err := s.bookingRepository.UpdateBooking(ctx, booking)
	if err != nil {
		return models.Booking{}, fmt.Errorf("updating booking failed: %w", err)
	}

	return updated, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, id int64) error {
	if err := s.bookingRepository.DeleteBooking(ctx, id); err != nil {
		return fmt.Errorf("deleting booking failed: %w", err)
	}

	return nil
}

func validateBooking(booking models.Booking) error {
	if booking.Name == "" {
		return ErrValidationNameRequired
	}
	if booking.NoOfGuests < 1 {
		return ErrValidationGuestsRequired
	}
	if booking.BookingDate.IsZero() {
		return ErrValidationBookingDateRequired
	}

	return nil
}
