package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireInventory(r chi.Router, inventoryHandler *adaptor.InventoryHandler, g guards) {
	// ==================== STAFF ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(g.staff...)

		r.Get("/api/branches", inventoryHandler.ListBranches)
		r.Get("/api/room-types", inventoryHandler.ListRoomTypes)
		r.Get("/api/room-types/{id}", inventoryHandler.GetRoomType)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(g.admin...)

		r.Post("/api/admin/branches", inventoryHandler.CreateBranch)
		r.Post("/api/admin/room-types", inventoryHandler.CreateRoomType)
		r.Post("/api/admin/rooms", inventoryHandler.CreateRoom)
		r.Delete("/api/admin/rooms/{id}", inventoryHandler.DeactivateRoom)
	})
}
