package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type BranchResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type RoomTypeResponse struct {
	ID               string `json:"id"`
	Code             string `json:"code"`
	Name             string `json:"name"`
	BedConfiguration string `json:"bed_configuration"`
	MaxOccupancy     int    `json:"max_occupancy"`
	SizeSqm          string `json:"size_sqm"`
	BaseRate         string `json:"base_rate"`
	IsActive         bool   `json:"is_active"`
}

type RoomResponse struct {
	ID         string            `json:"id"`
	BranchID   string            `json:"branch_id"`
	RoomTypeID string            `json:"room_type_id"`
	Number     string            `json:"number"`
	Floor      int               `json:"floor"`
	Status     entity.RoomStatus `json:"status"`
	IsActive   bool              `json:"is_active"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func BranchToResponse(b *entity.Branch) BranchResponse {
	return BranchResponse{
		ID:        b.ID.String(),
		Code:      b.Code,
		Name:      b.Name,
		Address:   b.Address,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
	}
}

func RoomTypeToResponse(rt *entity.RoomType) RoomTypeResponse {
	return RoomTypeResponse{
		ID:               rt.ID.String(),
		Code:             rt.Code,
		Name:             rt.Name,
		BedConfiguration: rt.BedConfiguration,
		MaxOccupancy:     rt.MaxOccupancy,
		SizeSqm:          Money(rt.SizeSqm),
		BaseRate:         Money(rt.BaseRate),
		IsActive:         rt.IsActive,
	}
}

func RoomToResponse(r *entity.Room) RoomResponse {
	return RoomResponse{
		ID:         r.ID.String(),
		BranchID:   r.BranchID.String(),
		RoomTypeID: r.RoomTypeID.String(),
		Number:     r.Number,
		Floor:      r.Floor,
		Status:     r.Status,
		IsActive:   r.IsActive,
		UpdatedAt:  r.UpdatedAt,
	}
}
