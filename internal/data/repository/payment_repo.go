package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrIdempotencyKeyTaken is returned by Create when another payment already
// carries the same idempotency key.
var ErrIdempotencyKeyTaken = errors.New("idempotency key already used")

const (
	uniqueViolation              = "23505"
	paymentIdempotencyConstraint = "payments_idempotency_key_key"
)

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraint
}

// PaymentRepository is append-only. There is no update or delete.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error)
	// FindByBookingIDs groups the ledgers of several bookings in one query.
	FindByBookingIDs(ctx context.Context, bookingIDs []uuid.UUID) (map[uuid.UUID][]*entity.Payment, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*entity.Payment, error)
}

type paymentRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewPaymentRepository(db database.Querier, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const paymentColumns = `id, booking_id, amount, method, settlement_type, transaction_reference,
	receipt_number, idempotency_key, received_by, created_at`

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	err := row.Scan(
		&p.ID,
		&p.BookingID,
		&p.Amount,
		&p.Method,
		&p.SettlementType,
		&p.TransactionReference,
		&p.ReceiptNumber,
		&p.IdempotencyKey,
		&p.ReceivedBy,
		&p.CreatedAt,
	)
	return &p, err
}

func (r *paymentRepository) Create(ctx context.Context, p *entity.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		p.ID,
		p.BookingID,
		p.Amount,
		p.Method,
		p.SettlementType,
		p.TransactionReference,
		p.ReceiptNumber,
		p.IdempotencyKey,
		p.ReceivedBy,
		p.CreatedAt,
	)
	if isUniqueViolation(err, paymentIdempotencyConstraint) {
		r.log.Warn("Idempotency key already used",
			zap.String("booking_id", p.BookingID.String()),
			zap.String("receipt_number", p.ReceiptNumber),
		)
		return fmt.Errorf("create payment %s: %w", p.ReceiptNumber, ErrIdempotencyKeyTaken)
	}
	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", p.BookingID.String()),
			zap.String("receipt_number", p.ReceiptNumber),
		)
		return fmt.Errorf("create payment %s: %w", p.ReceiptNumber, err)
	}

	return nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find payments by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find payments by booking ID %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}

func (r *paymentRepository) FindByBookingIDs(ctx context.Context, bookingIDs []uuid.UUID) (map[uuid.UUID][]*entity.Payment, error) {
	ledgers := make(map[uuid.UUID][]*entity.Payment, len(bookingIDs))
	if len(bookingIDs) == 0 {
		return ledgers, nil
	}

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = ANY($1) ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, bookingIDs)
	if err != nil {
		r.log.Error("Failed to find payments by booking IDs",
			zap.Error(err),
			zap.Int("bookings", len(bookingIDs)),
		)
		return nil, fmt.Errorf("find payments for %d bookings: %w", len(bookingIDs), err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		ledgers[p.BookingID] = append(ledgers[p.BookingID], p)
	}

	return ledgers, rows.Err()
}

func (r *paymentRepository) FindByIdempotencyKey(ctx context.Context, key string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE idempotency_key = $1`

	p, err := scanPayment(r.db.QueryRow(ctx, query, key))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by idempotency key", zap.Error(err))
		return nil, fmt.Errorf("find payment by idempotency key: %w", err)
	}

	return p, nil
}
