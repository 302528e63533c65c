package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type PaymentResponse struct {
	ID                   string                `json:"id"`
	BookingID            string                `json:"booking_id"`
	Amount               string                `json:"amount"`
	Method               entity.PaymentMethod  `json:"method"`
	SettlementType       entity.SettlementType `json:"settlement_type"`
	TransactionReference *string               `json:"transaction_reference,omitempty"`
	ReceiptNumber        string                `json:"receipt_number"`
	CreatedAt            time.Time             `json:"created_at"`
}

type FinancialsResponse struct {
	TotalAmount     string               `json:"total_amount"`
	TotalPaid       string               `json:"total_paid"`
	BalanceAmount   string               `json:"balance_amount"`
	IsFullyPaid     bool                 `json:"is_fully_paid"`
	HasBalance      bool                 `json:"has_balance"`
	AcceptsPayments bool                 `json:"accepts_payments"`
	PaymentStatus   entity.PaymentStatus `json:"payment_status"`
}

type SettlementResponse struct {
	Payment    PaymentResponse    `json:"payment"`
	Financials FinancialsResponse `json:"financials"`
	// true when an earlier payment with the same idempotency key was returned
	Replayed bool `json:"replayed"`
}

type SuggestedAmountResponse struct {
	SettlementType entity.SettlementType `json:"settlement_type"`
	Amount         *string               `json:"amount"`
}

func PaymentToResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                   p.ID.String(),
		BookingID:            p.BookingID.String(),
		Amount:               Money(p.Amount),
		Method:               p.Method,
		SettlementType:       p.SettlementType,
		TransactionReference: p.TransactionReference,
		ReceiptNumber:        p.ReceiptNumber,
		CreatedAt:            p.CreatedAt,
	}
}

func FinancialsToResponse(f entity.Financials) FinancialsResponse {
	return FinancialsResponse{
		TotalAmount:     Money(f.TotalAmount),
		TotalPaid:       Money(f.TotalPaid),
		BalanceAmount:   Money(f.BalanceAmount),
		IsFullyPaid:     f.IsFullyPaid,
		HasBalance:      f.HasBalance,
		AcceptsPayments: f.AcceptsPayments,
		PaymentStatus:   f.PaymentStatus,
	}
}
