package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	// FindByIDForUpdate locks the booking row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByReference(ctx context.Context, referenceCode string) (*entity.Booking, error)
	// FindLiveByRoomID returns the newest booking on the room that is not checked out or cancelled.
	FindLiveByRoomID(ctx context.Context, roomID uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, status *entity.BookingStatus, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context, status *entity.BookingStatus) (int64, error)
	Update(ctx context.Context, booking *entity.Booking) error
}

type bookingRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewBookingRepository(db database.Querier, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, reference_code, room_id, rate_id, guest_name, guest_count,
	check_in_at, expected_checkout_at, actual_check_in_at, actual_checkout_at, status,
	base_amount, discount_amount, tax_amount, currency, source, notes, created_by,
	created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.ReferenceCode,
		&b.RoomID,
		&b.RateID,
		&b.GuestName,
		&b.GuestCount,
		&b.CheckInAt,
		&b.ExpectedCheckoutAt,
		&b.ActualCheckInAt,
		&b.ActualCheckoutAt,
		&b.Status,
		&b.BaseAmount,
		&b.DiscountAmount,
		&b.TaxAmount,
		&b.Currency,
		&b.Source,
		&b.Notes,
		&b.CreatedBy,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return &b, err
}

func (r *bookingRepository) Create(ctx context.Context, b *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	_, err := r.db.Exec(ctx, query,
		b.ID,
		b.ReferenceCode,
		b.RoomID,
		b.RateID,
		b.GuestName,
		b.GuestCount,
		b.CheckInAt,
		b.ExpectedCheckoutAt,
		b.ActualCheckInAt,
		b.ActualCheckoutAt,
		b.Status,
		b.BaseAmount,
		b.DiscountAmount,
		b.TaxAmount,
		b.Currency,
		b.Source,
		b.Notes,
		b.CreatedBy,
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("reference_code", b.ReferenceCode),
			zap.String("room_id", b.RoomID.String()),
		)
		return fmt.Errorf("create booking %s: %w", b.ReferenceCode, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return b, nil
}

func (r *bookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`

	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock booking", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, fmt.Errorf("lock booking %s: %w", id.String(), err)
	}

	return b, nil
}

func (r *bookingRepository) FindByReference(ctx context.Context, referenceCode string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE reference_code = $1`

	b, err := scanBooking(r.db.QueryRow(ctx, query, referenceCode))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by reference",
			zap.Error(err),
			zap.String("reference_code", referenceCode),
		)
		return nil, fmt.Errorf("find booking by reference %s: %w", referenceCode, err)
	}

	return b, nil
}

func (r *bookingRepository) FindLiveByRoomID(ctx context.Context, roomID uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE room_id = $1 AND status IN ('pending', 'confirmed', 'checked_in')
		ORDER BY created_at DESC
		LIMIT 1
	`

	b, err := scanBooking(r.db.QueryRow(ctx, query, roomID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find live booking for room", zap.Error(err), zap.String("room_id", roomID.String()))
		return nil, fmt.Errorf("find live booking for room %s: %w", roomID.String(), err)
	}

	return b, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, status *entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY check_in_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

func (r *bookingRepository) Count(ctx context.Context, status *entity.BookingStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE ($1::text IS NULL OR status = $1)`

	var count int64
	if err := r.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

// Update writes the mutable lifecycle fields. Amounts, room and rate are fixed at creation.
func (r *bookingRepository) Update(ctx context.Context, b *entity.Booking) error {
	query := `
		UPDATE bookings
		SET status = $2, actual_check_in_at = $3, actual_checkout_at = $4, notes = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		b.ID,
		b.Status,
		b.ActualCheckInAt,
		b.ActualCheckoutAt,
		b.Notes,
		b.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", b.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", b.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", b.ID.String())
	}

	return nil
}
