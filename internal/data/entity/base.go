package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base is embedded by mutable rows. Nothing in this schema is hard or soft deleted;
// rows are deactivated instead.
type Base struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// BaseSimple is embedded by append-only rows.
type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
