package usecase

import (
	"fmt"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Wednesday
var testNow = time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

type fixture struct {
	store *memStore
	svc   *Service

	branch  entity.Branch
	deluxe  entity.RoomType
	room    entity.Room
	halfDay entity.RateType
	rate    entity.Rate
	staffID string
}

// newFixture seeds one branch with a deluxe room (max 2 guests) and an active
// weekday 12h rate of 1500.00. Every service sees testNow as the current time.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := newMemStore()
	repo := store.repository()
	config := &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 12},
		Booking: utils.DefaultBookingConfig(),
	}
	svc := NewService(repo, memTx{s: store, repo: repo}, config, zap.NewNop())

	clock := func() time.Time { return testNow }
	svc.Auth.(*authService).now = clock
	svc.Inventory.(*inventoryService).now = clock
	svc.Room.(*roomService).now = clock
	svc.Rate.(*rateService).now = clock
	svc.Booking.(*bookingService).now = clock
	svc.Payment.(*paymentService).now = clock

	f := &fixture{store: store, svc: svc, staffID: uuid.NewString()}

	f.branch = entity.Branch{Base: entity.Base{ID: uuid.New()}, Code: "MNL", Name: "Manila", IsActive: true}
	f.deluxe = entity.RoomType{
		Base:         entity.Base{ID: uuid.New()},
		Code:         "DLX",
		Name:         "Deluxe",
		MaxOccupancy: 2,
		BaseRate:     decimal.NewFromInt(1500),
		IsActive:     true,
	}
	f.room = f.addRoom("101", entity.RoomStatusAvailable)
	f.halfDay = f.addRateType(12, entity.DayTypeWeekday)
	f.rate = f.addRate(f.halfDay, "1500", testNow.AddDate(0, -1, 0), nil)

	store.branches[f.branch.ID] = f.branch
	store.roomTypes[f.deluxe.ID] = f.deluxe
	return f
}

func (f *fixture) addRoom(number string, status entity.RoomStatus) entity.Room {
	room := entity.Room{
		Base:       entity.Base{ID: uuid.New()},
		BranchID:   f.branch.ID,
		RoomTypeID: f.deluxe.ID,
		Number:     number,
		Status:     status,
		IsActive:   true,
	}
	f.store.rooms[room.ID] = room
	return room
}

func (f *fixture) addRateType(hours int, dayType entity.DayType) entity.RateType {
	rt := entity.RateType{
		Base:         entity.Base{ID: uuid.New()},
		Name:         fmt.Sprintf("%dh %s", hours, dayType),
		Duration:     hours,
		DurationUnit: entity.DurationUnitHours,
		DayType:      dayType,
	}
	f.store.rateTypes[rt.ID] = rt
	return rt
}

func (f *fixture) addRate(rt entity.RateType, amount string, from time.Time, to *time.Time) entity.Rate {
	rate := entity.Rate{
		Base:          entity.Base{ID: uuid.New()},
		RoomTypeID:    f.deluxe.ID,
		RateTypeID:    rt.ID,
		BranchID:      f.branch.ID,
		Currency:      "PHP",
		BaseAmount:    decimal.RequireFromString(amount),
		EffectiveFrom: from,
		EffectiveTo:   to,
		IsActive:      true,
	}
	f.store.rates[rate.ID] = rate
	return rate
}

func (f *fixture) roomStatus(id uuid.UUID) entity.RoomStatus {
	return f.store.room(id).Status
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}
