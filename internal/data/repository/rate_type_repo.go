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

type RateTypeRepository interface {
	Create(ctx context.Context, rateType *entity.RateType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RateType, error)
	FindAll(ctx context.Context) ([]*entity.RateType, error)
}

type rateTypeRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewRateTypeRepository(db database.Querier, log *zap.Logger) RateTypeRepository {
	return &rateTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "rate_type")),
	}
}

const rateTypeColumns = `id, name, duration, duration_unit, day_type, description, created_at, updated_at`

func scanRateType(row pgx.Row) (*entity.RateType, error) {
	var rt entity.RateType
	err := row.Scan(
		&rt.ID,
		&rt.Name,
		&rt.Duration,
		&rt.DurationUnit,
		&rt.DayType,
		&rt.Description,
		&rt.CreatedAt,
		&rt.UpdatedAt,
	)
	return &rt, err
}

func (r *rateTypeRepository) Create(ctx context.Context, rt *entity.RateType) error {
	query := `
		INSERT INTO rate_types (` + rateTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		rt.ID,
		rt.Name,
		rt.Duration,
		rt.DurationUnit,
		rt.DayType,
		rt.Description,
		rt.CreatedAt,
		rt.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create rate type",
			zap.Error(err),
			zap.Int("duration", rt.Duration),
			zap.String("day_type", string(rt.DayType)),
		)
		return fmt.Errorf("create rate type %s: %w", rt.Name, err)
	}

	return nil
}

func (r *rateTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RateType, error) {
	query := `SELECT ` + rateTypeColumns + ` FROM rate_types WHERE id = $1`

	rt, err := scanRateType(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rate type by ID", zap.Error(err), zap.String("rate_type_id", id.String()))
		return nil, fmt.Errorf("find rate type by ID %s: %w", id.String(), err)
	}

	return rt, nil
}

func (r *rateTypeRepository) FindAll(ctx context.Context) ([]*entity.RateType, error) {
	query := `SELECT ` + rateTypeColumns + ` FROM rate_types ORDER BY day_type, duration`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list rate types", zap.Error(err))
		return nil, fmt.Errorf("list rate types: %w", err)
	}
	defer rows.Close()

	var rateTypes []*entity.RateType
	for rows.Next() {
		rt, err := scanRateType(rows)
		if err != nil {
			r.log.Error("Failed to scan rate type row", zap.Error(err))
			return nil, fmt.Errorf("scan rate type row: %w", err)
		}
		rateTypes = append(rateTypes, rt)
	}

	return rateTypes, rows.Err()
}
