package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is an opaque bearer token for one staff login. It ends at ExpiresAt or
// when revoked by logout or staff deactivation, whichever comes first.
type Session struct {
	BaseSimple
	UserID    uuid.UUID  `db:"user_id"`
	Token     uuid.UUID  `db:"token"`
	UserAgent *string    `db:"user_agent"`
	IPAddress *string    `db:"ip_address"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

func (s *Session) ActiveAt(at time.Time) bool {
	return s.RevokedAt == nil && at.Before(s.ExpiresAt)
}
