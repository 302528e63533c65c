package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser configures the profile route and admin staff management
func wireUser(r chi.Router, userHandler *adaptor.UserHandler, g guards) {
	r.With(g.staff...).Get("/api/me", userHandler.GetProfile)

	// ==================== ADMIN ROUTES ====================
	r.With(g.admin...).Route("/api/admin/users", func(r chi.Router) {
		r.Get("/", userHandler.GetAllStaff)            // GET /api/admin/users?page=1&per_page=10
		r.Post("/", userHandler.CreateStaff)           // POST /api/admin/users
		r.Delete("/{id}", userHandler.DeactivateStaff) // DELETE /api/admin/users/{user-id}
	})
}
