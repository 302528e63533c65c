package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireRoom exposes the room board. Housekeeping staff may move rooms through
// cleaning and maintenance; only the desk checks a room for a new booking.
func wireRoom(r chi.Router, roomHandler *adaptor.RoomHandler, inventoryHandler *adaptor.InventoryHandler, g guards) {
	r.Route("/api/rooms", func(r chi.Router) {
		r.Use(g.staff...)

		r.Get("/", roomHandler.ListRooms)
		r.Get("/available", roomHandler.ListAvailableRooms)
		r.Get("/{id}", inventoryHandler.GetRoom)

		r.Post("/{id}/housekeeping-done", roomHandler.CompleteHousekeeping)
		r.Post("/{id}/maintenance", roomHandler.FlagMaintenance)
		r.Delete("/{id}/maintenance", roomHandler.ClearMaintenance)

		r.With(g.deskRole).Get("/{id}/select", roomHandler.SelectRoom)
	})
}
