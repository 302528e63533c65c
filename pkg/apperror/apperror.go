package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a rejected operation so callers can react without parsing messages.
type Kind string

const (
	KindNotFound             Kind = "NOT_FOUND"
	KindInvalidInput         Kind = "INVALID_INPUT"
	KindInvalidTransition    Kind = "INVALID_TRANSITION"
	KindUnauthorized         Kind = "UNAUTHORIZED"
	KindForbidden            Kind = "FORBIDDEN"
	KindRateNotFound         Kind = "RATE_NOT_FOUND"
	KindRoomUnavailable      Kind = "ROOM_UNAVAILABLE"
	KindRoomOccupied         Kind = "ROOM_OCCUPIED"
	KindRoomCleaning         Kind = "ROOM_CLEANING"
	KindRoomUnderMaintenance Kind = "ROOM_UNDER_MAINTENANCE"
	KindOccupancyExceeded    Kind = "OCCUPANCY_EXCEEDED"
	KindAmountExceedsBalance Kind = "AMOUNT_EXCEEDS_BALANCE"
	KindBookingNotPayable    Kind = "BOOKING_NOT_PAYABLE"
	KindInvalidPaymentMethod Kind = "INVALID_PAYMENT_METHOD"
)

// Error is a rejected operation. It never represents an infrastructure failure;
// those stay plain wrapped errors.
type Error struct {
	Kind    Kind
	Message string
	parent  Kind
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches on kind, so a freshly built error with a specific message still
// satisfies errors.Is against the package sentinels. Room rejections also match
// ErrRoomUnavailable.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind || (e.parent != "" && t.Kind == e.parent)
}

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), parent: parentOf(kind)}
}

func parentOf(kind Kind) Kind {
	switch kind {
	case KindRoomOccupied, KindRoomCleaning, KindRoomUnderMaintenance:
		return KindRoomUnavailable
	}
	return ""
}

// KindOf returns the kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

var (
	ErrNotFound             = New(KindNotFound, "resource not found")
	ErrInvalidInput         = New(KindInvalidInput, "invalid input")
	ErrInvalidTransition    = New(KindInvalidTransition, "operation not allowed in current state")
	ErrUnauthorized         = New(KindUnauthorized, "invalid credentials")
	ErrForbidden            = New(KindForbidden, "access denied")
	ErrRateNotFound         = New(KindRateNotFound, "no active rate matches the requested stay")
	ErrRoomUnavailable      = New(KindRoomUnavailable, "room is not available")
	ErrRoomOccupied         = New(KindRoomOccupied, "room is occupied")
	ErrRoomCleaning         = New(KindRoomCleaning, "room is being cleaned")
	ErrRoomUnderMaintenance = New(KindRoomUnderMaintenance, "room is under maintenance")
	ErrOccupancyExceeded    = New(KindOccupancyExceeded, "guest count exceeds room occupancy")
	ErrAmountExceedsBalance = New(KindAmountExceedsBalance, "payment amount exceeds outstanding balance")
	ErrBookingNotPayable    = New(KindBookingNotPayable, "booking does not accept payments")
	ErrInvalidPaymentMethod = New(KindInvalidPaymentMethod, "unsupported payment method")
)
