package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RateStatus string

const (
	RateStatusFuture  RateStatus = "future"
	RateStatusActive  RateStatus = "active"
	RateStatusExpired RateStatus = "expired"
)

type Rate struct {
	Base
	RoomTypeID    uuid.UUID       `db:"room_type_id"`
	RateTypeID    uuid.UUID       `db:"rate_type_id"`
	BranchID      uuid.UUID       `db:"branch_id"`
	Currency      string          `db:"currency"`
	BaseAmount    decimal.Decimal `db:"base_amount"`
	EffectiveFrom time.Time       `db:"effective_from"`
	EffectiveTo   *time.Time      `db:"effective_to"`
	IsActive      bool            `db:"is_active"`

	// joined, not a column
	RateType *RateType `db:"-"`
}

// StatusAt derives the window status at now. Both ends are inclusive and a nil
// EffectiveTo never expires.
func (r *Rate) StatusAt(now time.Time) RateStatus {
	if now.Before(r.EffectiveFrom) {
		return RateStatusFuture
	}
	if r.EffectiveTo != nil && now.After(*r.EffectiveTo) {
		return RateStatusExpired
	}
	return RateStatusActive
}

// Applicable reports whether the rate may be quoted at now.
func (r *Rate) Applicable(now time.Time) bool {
	return r.IsActive && r.StatusAt(now) == RateStatusActive
}
