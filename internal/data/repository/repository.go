package repository

import (
	"context"

	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Branch   BranchRepository
	RoomType RoomTypeRepository
	Room     RoomRepository
	RateType RateTypeRepository
	Rate     RateRepository
	Booking  BookingRepository
	Payment  PaymentRepository
}

// NewRepository binds every repository to q, which is either the pool or an open transaction.
func NewRepository(q database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(q, log),
		Session:  NewSessionRepository(q, log),
		Branch:   NewBranchRepository(q, log),
		RoomType: NewRoomTypeRepository(q, log),
		Room:     NewRoomRepository(q, log),
		RateType: NewRateTypeRepository(q, log),
		Rate:     NewRateRepository(q, log),
		Booking:  NewBookingRepository(q, log),
		Payment:  NewPaymentRepository(q, log),
	}
}

// Transactor runs fn with repositories bound to a single transaction. Everything fn
// writes is committed together or not at all.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(tx *Repository) error) error
}

type pgxTransactor struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTransactor(db database.PgxIface, log *zap.Logger) Transactor {
	return &pgxTransactor{db: db, log: log}
}

func (t *pgxTransactor) WithinTx(ctx context.Context, fn func(tx *Repository) error) error {
	return database.WithTx(ctx, t.db, func(tx pgx.Tx) error {
		return fn(NewRepository(tx, t.log))
	})
}
