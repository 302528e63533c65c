package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/apperror"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RoomService exposes the room state machine. Booking-driven transitions happen
// inside BookingService; the manual ones live here.
type RoomService interface {
	// SelectRoom checks whether a new booking may start on the room. It changes nothing.
	SelectRoom(ctx context.Context, roomID string) (*response.RoomResponse, error)
	ListRooms(ctx context.Context, req *request.RoomFilterRequest) ([]response.RoomResponse, error)
	ListAvailableRooms(ctx context.Context, req *request.RoomFilterRequest) ([]response.RoomResponse, error)

	CompleteHousekeeping(ctx context.Context, roomID string) (*response.RoomResponse, error)
	FlagMaintenance(ctx context.Context, roomID string) (*response.RoomResponse, error)
	ClearMaintenance(ctx context.Context, roomID string) (*response.RoomResponse, error)
}

type roomService struct {
	repo *repository.Repository
	tx   repository.Transactor
	log  *zap.Logger
	now  func() time.Time
}

func NewRoomService(repo *repository.Repository, tx repository.Transactor, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		tx:   tx,
		log:  log.With(zap.String("service", "room")),
		now:  time.Now,
	}
}

func (s *roomService) SelectRoom(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	id, err := parseID("room", roomID)
	if err != nil {
		return nil, err
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("select room: %w", err)
	}
	if room == nil {
		return nil, notFound("room", roomID)
	}

	if err := room.Selectable(); err != nil {
		s.log.Info("Room selection rejected",
			zap.String("room_id", roomID),
			zap.String("status", string(room.Status)),
		)
		return nil, err
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) ListRooms(ctx context.Context, req *request.RoomFilterRequest) ([]response.RoomResponse, error) {
	filter, err := roomFilterFrom(req)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, filter)
}

func (s *roomService) ListAvailableRooms(ctx context.Context, req *request.RoomFilterRequest) ([]response.RoomResponse, error) {
	filter, err := roomFilterFrom(req)
	if err != nil {
		return nil, err
	}
	available := entity.RoomStatusAvailable
	filter.Status = &available
	filter.ActiveOnly = true
	return s.list(ctx, filter)
}

func (s *roomService) list(ctx context.Context, filter repository.RoomFilter) ([]response.RoomResponse, error) {
	rooms, err := s.repo.Room.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	resp := make([]response.RoomResponse, len(rooms))
	for i, r := range rooms {
		resp[i] = response.RoomToResponse(r)
	}
	return resp, nil
}

func (s *roomService) CompleteHousekeeping(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	return s.apply(ctx, roomID, entity.RoomEventHousekeepingDone)
}

func (s *roomService) FlagMaintenance(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	return s.apply(ctx, roomID, entity.RoomEventMaintenanceFlagged)
}

// ClearMaintenance hands the room back to its live booking when there is one,
// otherwise it becomes available.
func (s *roomService) ClearMaintenance(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	return s.applyWith(ctx, roomID, "clear maintenance", func(tx *repository.Repository, room *entity.Room) (entity.RoomEvent, error) {
		live, err := tx.Booking.FindLiveByRoomID(ctx, room.ID)
		if err != nil {
			return "", err
		}
		if live != nil {
			return entity.RoomEventMaintenanceReturned, nil
		}
		return entity.RoomEventMaintenanceCleared, nil
	})
}

func (s *roomService) apply(ctx context.Context, roomID string, event entity.RoomEvent) (*response.RoomResponse, error) {
	return s.applyWith(ctx, roomID, string(event), func(*repository.Repository, *entity.Room) (entity.RoomEvent, error) {
		return event, nil
	})
}

// applyWith locks the room and moves it through the event chosen by pick.
func (s *roomService) applyWith(
	ctx context.Context,
	roomID string,
	op string,
	pick func(tx *repository.Repository, room *entity.Room) (entity.RoomEvent, error),
) (*response.RoomResponse, error) {
	id, err := parseID("room", roomID)
	if err != nil {
		return nil, err
	}

	var (
		room  *entity.Room
		event entity.RoomEvent
	)
	err = s.tx.WithinTx(ctx, func(tx *repository.Repository) error {
		r, err := lockRoom(ctx, tx, id)
		if err != nil {
			return err
		}
		if event, err = pick(tx, r); err != nil {
			return err
		}
		if err := transitionRoom(ctx, tx, r, event, s.now().UTC()); err != nil {
			return err
		}
		room = r
		return nil
	})
	if err != nil {
		return nil, wrapTxError(fmt.Sprintf("%s on room %s", op, roomID), err)
	}

	s.log.Info("Room status changed",
		zap.String("room_id", roomID),
		zap.String("event", string(event)),
		zap.String("status", string(room.Status)),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

// transitionRoom moves room through event with a compare-and-swap on the stored
// status. A lost race surfaces as INVALID_TRANSITION and nothing is written.
func transitionRoom(ctx context.Context, tx *repository.Repository, room *entity.Room, event entity.RoomEvent, at time.Time) error {
	next, err := room.Status.Next(event)
	if err != nil {
		return err
	}

	ok, err := tx.Room.CompareAndSetStatus(ctx, room.ID, room.Status, next)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.New(apperror.KindInvalidTransition,
			"room %s changed status concurrently, expected %s", room.Number, room.Status)
	}

	room.Status = next
	room.UpdatedAt = at
	return nil
}

func roomFilterFrom(req *request.RoomFilterRequest) (repository.RoomFilter, error) {
	var filter repository.RoomFilter
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return filter, validationError(errs)
	}

	var err error
	if filter.BranchID, err = parseOptionalID("branch", req.BranchID); err != nil {
		return filter, err
	}
	if filter.RoomTypeID, err = parseOptionalID("room type", req.RoomTypeID); err != nil {
		return filter, err
	}
	if req.Status != "" {
		status := entity.RoomStatus(req.Status)
		filter.Status = &status
	}
	return filter, nil
}

// lockRoom loads the room for update and reports a missing room as NOT_FOUND.
func lockRoom(ctx context.Context, tx *repository.Repository, id uuid.UUID) (*entity.Room, error) {
	room, err := tx.Room.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, notFound("room", id.String())
	}
	return room, nil
}
