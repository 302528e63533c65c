package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRate(r chi.Router, rateHandler *adaptor.RateHandler, g guards) {
	r.Group(func(r chi.Router) {
		r.Use(g.staff...)

		r.Get("/api/rate-types", rateHandler.ListRateTypes)
		r.Get("/api/room-types/{id}/rates", rateHandler.ListRates)
	})

	r.With(g.desk...).Get("/api/rates/resolve", rateHandler.ResolveRate)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(g.admin...)

		r.Post("/api/admin/rate-types", rateHandler.CreateRateType)
		r.Post("/api/admin/rates", rateHandler.CreateRate)
		r.Delete("/api/admin/rates/{id}", rateHandler.DeactivateRate)
	})
}
