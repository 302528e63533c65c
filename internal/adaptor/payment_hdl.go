package adaptor

import (
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// SettlePayment handles POST /api/bookings/{id}/payments. A replayed
// idempotency key answers 200 with the original payment instead of 201.
func (h *PaymentHandler) SettlePayment(w http.ResponseWriter, r *http.Request) {
	var req request.SettlePaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	settlement, err := h.service.SettlePayment(r.Context(), actorID(r), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "settle payment")
		return
	}

	if settlement.Replayed {
		utils.ResponseSuccess(w, "Payment already recorded", settlement)
		return
	}
	utils.ResponseCreated(w, "Payment recorded", settlement)
}

// ListPayments handles GET /api/bookings/{id}/payments
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.ListPayments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "list payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}

// GetFinancials handles GET /api/bookings/{id}/financials
func (h *PaymentHandler) GetFinancials(w http.ResponseWriter, r *http.Request) {
	financials, err := h.service.GetFinancials(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get financials")
		return
	}

	utils.ResponseSuccess(w, "success", financials)
}

// SuggestAmount handles GET /api/bookings/{id}/payments/suggestion?settlement_type=
func (h *PaymentHandler) SuggestAmount(w http.ResponseWriter, r *http.Request) {
	suggestion, err := h.service.SuggestAmount(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("settlement_type"))
	if err != nil {
		handleServiceError(w, h.log, err, "suggest amount")
		return
	}

	utils.ResponseSuccess(w, "success", suggestion)
}

// GetPaymentMethods handles GET /api/payment-methods
func (h *PaymentHandler) GetPaymentMethods(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.GetPaymentMethods(r.Context()))
}
