package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type BookingResponse struct {
	ID                 string               `json:"id"`
	ReferenceCode      string               `json:"reference_code"`
	RoomID             string               `json:"room_id"`
	RateID             string               `json:"rate_id"`
	GuestName          string               `json:"guest_name"`
	GuestCount         int                  `json:"guest_count"`
	CheckInAt          time.Time            `json:"check_in_at"`
	ExpectedCheckoutAt time.Time            `json:"expected_checkout_at"`
	ActualCheckInAt    *time.Time           `json:"actual_check_in_at,omitempty"`
	ActualCheckoutAt   *time.Time           `json:"actual_checkout_at,omitempty"`
	Status             entity.BookingStatus `json:"status"`
	BaseAmount         string               `json:"base_amount"`
	DiscountAmount     string               `json:"discount_amount"`
	TaxAmount          string               `json:"tax_amount"`
	TotalAmount        string               `json:"total_amount"`
	Currency           string               `json:"currency"`
	PaymentStatus      entity.PaymentStatus `json:"payment_status"`
	Source             entity.BookingSource `json:"source"`
	Notes              string               `json:"notes"`
	CreatedBy          *string              `json:"created_by,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
}

type BookingDetailResponse struct {
	BookingResponse
	Financials FinancialsResponse `json:"financials"`
	Payments   []PaymentResponse  `json:"payments"`
}

// BookingToResponse renders a booking with the payment status of f.
func BookingToResponse(b *entity.Booking, f entity.Financials) BookingResponse {
	resp := BookingResponse{
		ID:                 b.ID.String(),
		ReferenceCode:      b.ReferenceCode,
		RoomID:             b.RoomID.String(),
		RateID:             b.RateID.String(),
		GuestName:          b.GuestName,
		GuestCount:         b.GuestCount,
		CheckInAt:          b.CheckInAt,
		ExpectedCheckoutAt: b.ExpectedCheckoutAt,
		ActualCheckInAt:    b.ActualCheckInAt,
		ActualCheckoutAt:   b.ActualCheckoutAt,
		Status:             b.Status,
		BaseAmount:         Money(b.BaseAmount),
		DiscountAmount:     Money(b.DiscountAmount),
		TaxAmount:          Money(b.TaxAmount),
		TotalAmount:        Money(b.TotalAmount()),
		Currency:           b.Currency,
		PaymentStatus:      f.PaymentStatus,
		Source:             b.Source,
		Notes:              b.Notes,
		CreatedAt:          b.CreatedAt,
	}
	if b.CreatedBy != nil {
		id := b.CreatedBy.String()
		resp.CreatedBy = &id
	}
	return resp
}

func BookingToDetailResponse(b *entity.Booking, payments []*entity.Payment) BookingDetailResponse {
	f := entity.ComputeFinancials(b, payments)
	resp := BookingDetailResponse{
		BookingResponse: BookingToResponse(b, f),
		Financials:      FinancialsToResponse(f),
		Payments:        make([]PaymentResponse, len(payments)),
	}
	for i, p := range payments {
		resp.Payments[i] = PaymentToResponse(p)
	}
	return resp
}
