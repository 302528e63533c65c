package wire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// stubSessions and stubUsers answer only what the guards and /api/me need.
type stubSessions struct {
	repository.SessionRepository
	byToken map[string]uuid.UUID
}

func (s stubSessions) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	if id, ok := s.byToken[token]; ok {
		return &entity.Session{UserID: id}, nil
	}
	return nil, nil
}

type stubUsers struct {
	repository.UserRepository
	byID map[uuid.UUID]*entity.User
}

func (u stubUsers) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return u.byID[id], nil
}

func newTestApp(t *testing.T) *App {
	t.Helper()

	sessions := stubSessions{byToken: map[string]uuid.UUID{}}
	users := stubUsers{byID: map[uuid.UUID]*entity.User{}}
	for token, role := range map[string]entity.UserRole{
		"admin-token": entity.RoleAdmin,
		"desk-token":  entity.RoleFrontDesk,
		"hk-token":    entity.RoleHousekeeping,
	} {
		id := uuid.New()
		sessions.byToken[token] = id
		users.byID[id] = &entity.User{Base: entity.Base{ID: id}, Username: string(role), Role: role, IsActive: true}
	}

	config := &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 12},
		Booking: utils.DefaultBookingConfig(),
	}
	return Wiring(&repository.Repository{Session: sessions, User: users}, nil, config, zap.NewNop())
}

func TestRouter_Guards(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		code   int
	}{
		{"health is public", http.MethodGet, "/health", "", http.StatusOK},
		{"bookings need a session", http.MethodGet, "/api/bookings", "", http.StatusUnauthorized},
		{"unknown token", http.MethodGet, "/api/me", "stale-token", http.StatusUnauthorized},
		{"profile for any staff", http.MethodGet, "/api/me", "hk-token", http.StatusOK},
		{"housekeeping cannot book", http.MethodPost, "/api/bookings", "hk-token", http.StatusForbidden},
		{"housekeeping cannot select rooms", http.MethodGet, "/api/rooms/" + uuid.NewString() + "/select", "hk-token", http.StatusForbidden},
		{"housekeeping cannot take payments", http.MethodPost, "/api/bookings/" + uuid.NewString() + "/payments", "hk-token", http.StatusForbidden},
		{"front desk cannot manage staff", http.MethodGet, "/api/admin/users", "desk-token", http.StatusForbidden},
		{"front desk cannot publish rates", http.MethodPost, "/api/admin/rates", "desk-token", http.StatusForbidden},
		{"unknown route", http.MethodGet, "/api/movies", "admin-token", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			app.Router.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}
}
