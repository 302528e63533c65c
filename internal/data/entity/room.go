package entity

import (
	"hotel-booking/pkg/apperror"

	"github.com/google/uuid"
)

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusCleaning    RoomStatus = "cleaning"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusCleaning, RoomStatusMaintenance:
		return true
	}
	return false
}

// RoomEvent is an external trigger that overwrites a room's status.
type RoomEvent string

const (
	RoomEventBookingConfirmed    RoomEvent = "booking_confirmed"
	RoomEventBookingCancelled    RoomEvent = "booking_cancelled"
	RoomEventCheckedOut          RoomEvent = "checked_out"
	RoomEventHousekeepingDone    RoomEvent = "housekeeping_done"
	RoomEventMaintenanceFlagged  RoomEvent = "maintenance_flagged"
	RoomEventMaintenanceCleared  RoomEvent = "maintenance_cleared"
	// RoomEventMaintenanceReturned clears maintenance on a room that still holds a live booking.
	RoomEventMaintenanceReturned RoomEvent = "maintenance_returned"
)

type roomTransition struct {
	from []RoomStatus // nil means any status
	to   RoomStatus
}

var roomTransitions = map[RoomEvent]roomTransition{
	RoomEventBookingConfirmed:    {from: []RoomStatus{RoomStatusAvailable}, to: RoomStatusOccupied},
	RoomEventBookingCancelled:    {from: []RoomStatus{RoomStatusOccupied}, to: RoomStatusAvailable},
	RoomEventCheckedOut:          {from: []RoomStatus{RoomStatusOccupied}, to: RoomStatusCleaning},
	RoomEventHousekeepingDone:    {from: []RoomStatus{RoomStatusCleaning}, to: RoomStatusAvailable},
	RoomEventMaintenanceFlagged:  {from: nil, to: RoomStatusMaintenance},
	RoomEventMaintenanceCleared:  {from: []RoomStatus{RoomStatusMaintenance}, to: RoomStatusAvailable},
	RoomEventMaintenanceReturned: {from: []RoomStatus{RoomStatusMaintenance}, to: RoomStatusOccupied},
}

// Next returns the status the room moves to when event happens in status s.
func (s RoomStatus) Next(event RoomEvent) (RoomStatus, error) {
	t, ok := roomTransitions[event]
	if !ok {
		return s, apperror.New(apperror.KindInvalidInput, "unknown room event %q", event)
	}
	if t.from == nil {
		return t.to, nil
	}
	for _, from := range t.from {
		if from == s {
			return t.to, nil
		}
	}
	return s, apperror.New(apperror.KindInvalidTransition, "room cannot go from %s on %s", s, event)
}

type Room struct {
	Base
	BranchID   uuid.UUID  `db:"branch_id"`
	RoomTypeID uuid.UUID  `db:"room_type_id"`
	Number     string     `db:"number"`
	Floor      int        `db:"floor"`
	Status     RoomStatus `db:"status"`
	IsActive   bool       `db:"is_active"`
}

// Selectable reports whether a new booking may start on this room. The rejection
// names the blocking status so the caller can show a specific message.
func (r *Room) Selectable() error {
	if !r.IsActive {
		return apperror.New(apperror.KindRoomUnavailable, "room %s is deactivated", r.Number)
	}
	switch r.Status {
	case RoomStatusAvailable:
		return nil
	case RoomStatusOccupied:
		return apperror.New(apperror.KindRoomOccupied, "room %s is occupied", r.Number)
	case RoomStatusCleaning:
		return apperror.New(apperror.KindRoomCleaning, "room %s is being cleaned", r.Number)
	case RoomStatusMaintenance:
		return apperror.New(apperror.KindRoomUnderMaintenance, "room %s is under maintenance", r.Number)
	default:
		return apperror.New(apperror.KindRoomUnavailable, "room %s has unknown status %q", r.Number, r.Status)
	}
}
