package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type RateTypeResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Duration     int            `json:"duration"`
	DurationUnit string         `json:"duration_unit"`
	DayType      entity.DayType `json:"day_type"`
	Description  string         `json:"description"`
}

type RateResponse struct {
	ID            string            `json:"id"`
	RoomTypeID    string            `json:"room_type_id"`
	BranchID      string            `json:"branch_id"`
	Currency      string            `json:"currency"`
	BaseAmount    string            `json:"base_amount"`
	EffectiveFrom time.Time         `json:"effective_from"`
	EffectiveTo   *time.Time        `json:"effective_to,omitempty"`
	IsActive      bool              `json:"is_active"`
	Status        entity.RateStatus `json:"status"`
	RateType      *RateTypeResponse `json:"rate_type,omitempty"`
}

func RateTypeToResponse(rt *entity.RateType) RateTypeResponse {
	return RateTypeResponse{
		ID:           rt.ID.String(),
		Name:         rt.Name,
		Duration:     rt.Duration,
		DurationUnit: rt.DurationUnit,
		DayType:      rt.DayType,
		Description:  rt.Description,
	}
}

// RateToResponse derives the window status at now.
func RateToResponse(r *entity.Rate, now time.Time) RateResponse {
	resp := RateResponse{
		ID:            r.ID.String(),
		RoomTypeID:    r.RoomTypeID.String(),
		BranchID:      r.BranchID.String(),
		Currency:      r.Currency,
		BaseAmount:    Money(r.BaseAmount),
		EffectiveFrom: r.EffectiveFrom,
		EffectiveTo:   r.EffectiveTo,
		IsActive:      r.IsActive,
		Status:        r.StatusAt(now),
	}
	if r.RateType != nil {
		rt := RateTypeToResponse(r.RateType)
		resp.RateType = &rt
	}
	return resp
}
