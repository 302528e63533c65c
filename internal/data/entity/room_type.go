package entity

import "github.com/shopspring/decimal"

type RoomType struct {
	Base
	Code             string          `db:"code"`
	Name             string          `db:"name"`
	BedConfiguration string          `db:"bed_configuration"`
	MaxOccupancy     int             `db:"max_occupancy"`
	SizeSqm          decimal.Decimal `db:"size_sqm"`
	BaseRate         decimal.Decimal `db:"base_rate"`
	IsActive         bool            `db:"is_active"`
}

// Fits reports whether guestCount guests may stay in a room of this type.
func (t *RoomType) Fits(guestCount int) bool {
	return guestCount >= 1 && guestCount <= t.MaxOccupancy
}
