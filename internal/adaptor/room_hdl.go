package adaptor

import (
	"context"
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

func roomFilterFromQuery(r *http.Request) *request.RoomFilterRequest {
	query := r.URL.Query()
	return &request.RoomFilterRequest{
		Status:     query.Get("status"),
		BranchID:   query.Get("branch_id"),
		RoomTypeID: query.Get("room_type_id"),
	}
}

// ListRooms handles GET /api/rooms?status=&branch_id=&room_type_id=
func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.ListRooms(r.Context(), roomFilterFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// ListAvailableRooms handles GET /api/rooms/available?branch_id=&room_type_id=
func (h *RoomHandler) ListAvailableRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.ListAvailableRooms(r.Context(), roomFilterFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list available rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// SelectRoom handles GET /api/rooms/{id}/select. It answers whether the room can
// take a booking right now and changes nothing.
func (h *RoomHandler) SelectRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.service.SelectRoom(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "select room")
		return
	}

	utils.ResponseSuccess(w, "Room is available", room)
}

// CompleteHousekeeping handles POST /api/rooms/{id}/housekeeping-done
func (h *RoomHandler) CompleteHousekeeping(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "complete housekeeping", h.service.CompleteHousekeeping)
}

// FlagMaintenance handles POST /api/rooms/{id}/maintenance
func (h *RoomHandler) FlagMaintenance(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "flag maintenance", h.service.FlagMaintenance)
}

// ClearMaintenance handles DELETE /api/rooms/{id}/maintenance
func (h *RoomHandler) ClearMaintenance(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "clear maintenance", h.service.ClearMaintenance)
}

func (h *RoomHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	operation string,
	fn func(ctx context.Context, roomID string) (*response.RoomResponse, error),
) {
	room, err := fn(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, operation)
		return
	}

	utils.ResponseSuccess(w, "Room status updated", room)
}
