package adaptor

import (
	"net/http"
	"strconv"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RateHandler struct {
	service usecase.RateService
	log     *zap.Logger
}

func NewRateHandler(service usecase.RateService, log *zap.Logger) *RateHandler {
	return &RateHandler{
		service: service,
		log:     log.With(zap.String("handler", "rate")),
	}
}

// ResolveRate handles GET /api/rates/resolve?room_type_id=&day_type=&duration=
func (h *RateHandler) ResolveRate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	duration, err := strconv.Atoi(query.Get("duration"))
	if err != nil {
		utils.ResponseBadRequest(w, "duration must be a whole number of hours", nil)
		return
	}

	req := &request.ResolveRateRequest{
		RoomTypeID: query.Get("room_type_id"),
		DayType:    query.Get("day_type"),
		Duration:   duration,
	}

	rate, err := h.service.ResolveRate(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "resolve rate")
		return
	}

	utils.ResponseSuccess(w, "success", rate)
}

// ListRateTypes handles GET /api/rate-types
func (h *RateHandler) ListRateTypes(w http.ResponseWriter, r *http.Request) {
	rateTypes, err := h.service.ListRateTypes(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list rate types")
		return
	}

	utils.ResponseSuccess(w, "success", rateTypes)
}

// CreateRateType handles POST /api/admin/rate-types (admin only)
func (h *RateHandler) CreateRateType(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRateTypeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rateType, err := h.service.CreateRateType(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create rate type")
		return
	}

	utils.ResponseCreated(w, "Rate type created", rateType)
}

// ListRates handles GET /api/room-types/{id}/rates
func (h *RateHandler) ListRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.service.ListRates(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "list rates")
		return
	}

	utils.ResponseSuccess(w, "success", rates)
}

// CreateRate handles POST /api/admin/rates (admin only)
func (h *RateHandler) CreateRate(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rate, err := h.service.CreateRate(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create rate")
		return
	}

	utils.ResponseCreated(w, "Rate created", rate)
}

// DeactivateRate handles DELETE /api/admin/rates/{id} (admin only)
func (h *RateHandler) DeactivateRate(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeactivateRate(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "deactivate rate")
		return
	}

	utils.ResponseSuccess(w, "Rate deactivated", nil)
}
