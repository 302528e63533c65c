package adaptor

import (
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	service usecase.InventoryService
	log     *zap.Logger
}

func NewInventoryHandler(service usecase.InventoryService, log *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "inventory")),
	}
}

// ListBranches handles GET /api/branches
func (h *InventoryHandler) ListBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.service.ListBranches(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list branches")
		return
	}

	utils.ResponseSuccess(w, "success", branches)
}

// CreateBranch handles POST /api/admin/branches (admin only)
func (h *InventoryHandler) CreateBranch(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBranchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	branch, err := h.service.CreateBranch(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create branch")
		return
	}

	utils.ResponseCreated(w, "Branch created", branch)
}

// ListRoomTypes handles GET /api/room-types
func (h *InventoryHandler) ListRoomTypes(w http.ResponseWriter, r *http.Request) {
	roomTypes, err := h.service.ListRoomTypes(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list room types")
		return
	}

	utils.ResponseSuccess(w, "success", roomTypes)
}

// GetRoomType handles GET /api/room-types/{id}
func (h *InventoryHandler) GetRoomType(w http.ResponseWriter, r *http.Request) {
	roomType, err := h.service.GetRoomType(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get room type")
		return
	}

	utils.ResponseSuccess(w, "success", roomType)
}

// CreateRoomType handles POST /api/admin/room-types (admin only)
func (h *InventoryHandler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomTypeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	roomType, err := h.service.CreateRoomType(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create room type")
		return
	}

	utils.ResponseCreated(w, "Room type created", roomType)
}

// GetRoom handles GET /api/rooms/{id}
func (h *InventoryHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.service.GetRoom(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// CreateRoom handles POST /api/admin/rooms (admin only)
func (h *InventoryHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create room")
		return
	}

	utils.ResponseCreated(w, "Room created", room)
}

// DeactivateRoom handles DELETE /api/admin/rooms/{id} (admin only)
func (h *InventoryHandler) DeactivateRoom(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeactivateRoom(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "deactivate room")
		return
	}

	utils.ResponseSuccess(w, "Room deactivated", nil)
}
