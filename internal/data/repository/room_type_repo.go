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

type RoomTypeRepository interface {
	Create(ctx context.Context, roomType *entity.RoomType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error)
	FindAll(ctx context.Context) ([]*entity.RoomType, error)
}

type roomTypeRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewRoomTypeRepository(db database.Querier, log *zap.Logger) RoomTypeRepository {
	return &roomTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "room_type")),
	}
}

const roomTypeColumns = `id, code, name, bed_configuration, max_occupancy, size_sqm, base_rate, is_active, created_at, updated_at`

func scanRoomType(row pgx.Row) (*entity.RoomType, error) {
	var rt entity.RoomType
	err := row.Scan(
		&rt.ID,
		&rt.Code,
		&rt.Name,
		&rt.BedConfiguration,
		&rt.MaxOccupancy,
		&rt.SizeSqm,
		&rt.BaseRate,
		&rt.IsActive,
		&rt.CreatedAt,
		&rt.UpdatedAt,
	)
	return &rt, err
}

func (r *roomTypeRepository) Create(ctx context.Context, rt *entity.RoomType) error {
	query := `
		INSERT INTO room_types (` + roomTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		rt.ID,
		rt.Code,
		rt.Name,
		rt.BedConfiguration,
		rt.MaxOccupancy,
		rt.SizeSqm,
		rt.BaseRate,
		rt.IsActive,
		rt.CreatedAt,
		rt.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create room type", zap.Error(err), zap.String("code", rt.Code))
		return fmt.Errorf("create room type %s: %w", rt.Code, err)
	}

	return nil
}

func (r *roomTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error) {
	query := `SELECT ` + roomTypeColumns + ` FROM room_types WHERE id = $1`

	rt, err := scanRoomType(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room type by ID", zap.Error(err), zap.String("room_type_id", id.String()))
		return nil, fmt.Errorf("find room type by ID %s: %w", id.String(), err)
	}

	return rt, nil
}

func (r *roomTypeRepository) FindAll(ctx context.Context) ([]*entity.RoomType, error) {
	query := `SELECT ` + roomTypeColumns + ` FROM room_types ORDER BY code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list room types", zap.Error(err))
		return nil, fmt.Errorf("list room types: %w", err)
	}
	defer rows.Close()

	var roomTypes []*entity.RoomType
	for rows.Next() {
		rt, err := scanRoomType(rows)
		if err != nil {
			r.log.Error("Failed to scan room type row", zap.Error(err))
			return nil, fmt.Errorf("scan room type row: %w", err)
		}
		roomTypes = append(roomTypes, rt)
	}

	return roomTypes, rows.Err()
}
