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

type RateRepository interface {
	Create(ctx context.Context, rate *entity.Rate) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rate, error)
	// FindByRoomTypeID returns every rate of the room type with its rate type joined,
	// including inactive and out-of-window rows.
	FindByRoomTypeID(ctx context.Context, roomTypeID uuid.UUID) ([]*entity.Rate, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type rateRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewRateRepository(db database.Querier, log *zap.Logger) RateRepository {
	return &rateRepository{
		db:  db,
		log: log.With(zap.String("repository", "rate")),
	}
}

const rateSelect = `
	SELECT r.id, r.room_type_id, r.rate_type_id, r.branch_id, r.currency, r.base_amount,
	       r.effective_from, r.effective_to, r.is_active, r.created_at, r.updated_at,
	       t.id, t.name, t.duration, t.duration_unit, t.day_type, t.description, t.created_at, t.updated_at
	FROM rates r
	JOIN rate_types t ON t.id = r.rate_type_id
`

func scanRate(row pgx.Row) (*entity.Rate, error) {
	var (
		rate entity.Rate
		rt   entity.RateType
	)
	err := row.Scan(
		&rate.ID,
		&rate.RoomTypeID,
		&rate.RateTypeID,
		&rate.BranchID,
		&rate.Currency,
		&rate.BaseAmount,
		&rate.EffectiveFrom,
		&rate.EffectiveTo,
		&rate.IsActive,
		&rate.CreatedAt,
		&rate.UpdatedAt,
		&rt.ID,
		&rt.Name,
		&rt.Duration,
		&rt.DurationUnit,
		&rt.DayType,
		&rt.Description,
		&rt.CreatedAt,
		&rt.UpdatedAt,
	)
	rate.RateType = &rt
	return &rate, err
}

func (r *rateRepository) Create(ctx context.Context, rate *entity.Rate) error {
	query := `
		INSERT INTO rates (id, room_type_id, rate_type_id, branch_id, currency, base_amount,
		                   effective_from, effective_to, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		rate.ID,
		rate.RoomTypeID,
		rate.RateTypeID,
		rate.BranchID,
		rate.Currency,
		rate.BaseAmount,
		rate.EffectiveFrom,
		rate.EffectiveTo,
		rate.IsActive,
		rate.CreatedAt,
		rate.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create rate",
			zap.Error(err),
			zap.String("room_type_id", rate.RoomTypeID.String()),
			zap.String("rate_type_id", rate.RateTypeID.String()),
		)
		return fmt.Errorf("create rate for room type %s: %w", rate.RoomTypeID.String(), err)
	}

	return nil
}

func (r *rateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rate, error) {
	rate, err := scanRate(r.db.QueryRow(ctx, rateSelect+` WHERE r.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rate by ID", zap.Error(err), zap.String("rate_id", id.String()))
		return nil, fmt.Errorf("find rate by ID %s: %w", id.String(), err)
	}

	return rate, nil
}

func (r *rateRepository) FindByRoomTypeID(ctx context.Context, roomTypeID uuid.UUID) ([]*entity.Rate, error) {
	query := rateSelect + ` WHERE r.room_type_id = $1 ORDER BY r.effective_from DESC`

	rows, err := r.db.Query(ctx, query, roomTypeID)
	if err != nil {
		r.log.Error("Failed to find rates by room type",
			zap.Error(err),
			zap.String("room_type_id", roomTypeID.String()),
		)
		return nil, fmt.Errorf("find rates by room type %s: %w", roomTypeID.String(), err)
	}
	defer rows.Close()

	var rates []*entity.Rate
	for rows.Next() {
		rate, err := scanRate(rows)
		if err != nil {
			r.log.Error("Failed to scan rate row", zap.Error(err))
			return nil, fmt.Errorf("scan rate row: %w", err)
		}
		rates = append(rates, rate)
	}

	return rates, rows.Err()
}

func (r *rateRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE rates SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to deactivate rate", zap.Error(err), zap.String("rate_id", id.String()))
		return fmt.Errorf("deactivate rate %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("rate %s not found", id.String())
	}

	return nil
}
