package entity

import (
	"time"

	"hotel-booking/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus is the lifecycle position of a booking. Pending is reserved for
// holds awaiting confirmation; desk bookings are created confirmed.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed:  {BookingStatusCheckedIn, BookingStatusCancelled},
	BookingStatusCheckedIn:  {BookingStatusCheckedOut},
	BookingStatusCheckedOut: {},
	BookingStatusCancelled:  {},
}

func (s BookingStatus) IsValid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range bookingTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal is true for checked_out and cancelled. Terminal bookings only accept note edits.
func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

type BookingSource string

const (
	BookingSourceWalkIn BookingSource = "walk_in"
	BookingSourcePhone  BookingSource = "phone"
	BookingSourceOnline BookingSource = "online"
)

func (s BookingSource) IsValid() bool {
	switch s {
	case BookingSourceWalkIn, BookingSourcePhone, BookingSourceOnline:
		return true
	}
	return false
}

type Booking struct {
	Base
	ReferenceCode      string          `db:"reference_code"`
	RoomID             uuid.UUID       `db:"room_id"`
	RateID             uuid.UUID       `db:"rate_id"`
	GuestName          string          `db:"guest_name"`
	GuestCount         int             `db:"guest_count"`
	CheckInAt          time.Time       `db:"check_in_at"`
	ExpectedCheckoutAt time.Time       `db:"expected_checkout_at"`
	ActualCheckInAt    *time.Time      `db:"actual_check_in_at"`
	ActualCheckoutAt   *time.Time      `db:"actual_checkout_at"`
	Status             BookingStatus   `db:"status"`
	BaseAmount         decimal.Decimal `db:"base_amount"`
	DiscountAmount     decimal.Decimal `db:"discount_amount"`
	TaxAmount          decimal.Decimal `db:"tax_amount"`
	Currency           string          `db:"currency"`
	Source             BookingSource   `db:"source"`
	Notes              string          `db:"notes"`
	CreatedBy          *uuid.UUID      `db:"created_by"`
}

// TotalAmount is always base - discount + tax; it is never stored.
func (b *Booking) TotalAmount() decimal.Decimal {
	return b.BaseAmount.Sub(b.DiscountAmount).Add(b.TaxAmount)
}

// Transition advances the booking status and stamps the actual check-in/checkout times.
func (b *Booking) Transition(to BookingStatus, at time.Time) error {
	if !b.Status.CanTransitionTo(to) {
		return apperror.New(apperror.KindInvalidTransition,
			"booking %s is %s and cannot become %s", b.ReferenceCode, b.Status, to)
	}
	switch to {
	case BookingStatusCheckedIn:
		b.ActualCheckInAt = &at
	case BookingStatusCheckedOut:
		b.ActualCheckoutAt = &at
	}
	b.Status = to
	b.UpdatedAt = at
	return nil
}
