package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/littlelemon/restaurant-server/internal/logger"
	"github.com/littlelemon/restaurant-server/models"
)

// bookingRepository is the PostgreSQL-backed implementation of
// [BookingRepository].
type bookingRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookingRepository constructs a [BookingRepository] backed by the
// provided database connection and logger.
func NewBookingRepository(db *DB, logger *logger.Logger) BookingRepository {
	logger.Debug().Msg("creating booking repository")
	return &bookingRepository{
		db:     db,
		logger: logger,
	}
}

func (r *bookingRepository) ListBookings(ctx context.Context) ([]models.Booking, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("id", "name", "no_of_guests", "booking_date").
		From(models.Booking{}.TableName()).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.ListBookings").Msg("error executing booking list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		var booking models.Booking
		if err := rows.Scan(&booking.ID, &booking.Name, &booking.NoOfGuests, &booking.BookingDate); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bookings, nil
}

func (r *bookingRepository) GetBooking(ctx context.Context, id int64) (models.Booking, error) {
	query, args, err := psql.
		Select("id", "name", "no_of_guests", "booking_date").
		From(models.Booking{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Booking{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var booking models.Booking
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&booking.ID, &booking.Name, &booking.NoOfGuests, &booking.BookingDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return booking, nil
}

func (r *bookingRepository) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Insert(models.Booking{}.TableName()).
		Columns("name", "no_of_guests", "booking_date").
		Values(booking.Name, booking.NoOfGuests, booking.BookingDate).
		Suffix("RETURNING id, name, no_of_guests, booking_date").
		ToSql()
	if err != nil {
		return models.Booking{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Booking
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.ID, &created.Name, &created.NoOfGuests, &created.BookingDate); err != nil {
		log.Err(err).Str("func", "*bookingRepository.CreateBooking").Msg("error creating booking")
		return models.Booking{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *bookingRepository) UpdateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	query, args, err := psql.
		Update(models.Booking{}.TableName()).
		Set("name", booking.Name).
		Set("no_of_guests", booking.NoOfGuests).
		Set("booking_date", booking.BookingDate).
		Where(sq.Eq{"id": booking.ID}).
		Suffix("RETURNING id, name, no_of_guests, booking_date").
		ToSql()
	if err != nil {
		return models.Booking{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Booking
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&updated.ID, &updated.Name, &updated.NoOfGuests, &updated.BookingDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *bookingRepository) DeleteBooking(ctx context.Context, id int64) error {
	query, args, err := psql.
		Delete(models.Booking{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}
