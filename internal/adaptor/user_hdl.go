package adaptor

import (
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetProfile handles GET /api/me
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.ActorFrom(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), actor.UserID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", profile)
}

// CreateStaff handles POST /api/admin/users (admin only)
func (h *UserHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req request.CreateStaffRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.CreateStaff(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create staff")
		return
	}

	utils.ResponseCreated(w, "Staff created successfully", user)
}

// GetAllStaff handles GET /api/admin/users?page=1&per_page=10 (admin only)
func (h *UserHandler) GetAllStaff(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	users, err := h.service.GetAllStaff(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get all staff")
		return
	}

	utils.ResponseSuccess(w, "Staff retrieved successfully", users)
}

// DeactivateStaff handles DELETE /api/admin/users/{id} (admin only)
func (h *UserHandler) DeactivateStaff(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	if err := h.service.DeactivateStaff(r.Context(), actorID(r), userID); err != nil {
		handleServiceError(w, h.log, err, "deactivate staff")
		return
	}

	utils.ResponseSuccess(w, "Staff deactivated successfully", nil)
}
