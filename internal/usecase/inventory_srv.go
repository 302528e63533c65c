package usecase

import (
	"context"
	"fmt"
	"strings"
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

// InventoryService maintains branches, room types and rooms. Rooms are never deleted.
type InventoryService interface {
	CreateBranch(ctx context.Context, req *request.CreateBranchRequest) (*response.BranchResponse, error)
	ListBranches(ctx context.Context) ([]response.BranchResponse, error)

	CreateRoomType(ctx context.Context, req *request.CreateRoomTypeRequest) (*response.RoomTypeResponse, error)
	ListRoomTypes(ctx context.Context) ([]response.RoomTypeResponse, error)
	GetRoomType(ctx context.Context, roomTypeID string) (*response.RoomTypeResponse, error)

	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	GetRoom(ctx context.Context, roomID string) (*response.RoomResponse, error)
	DeactivateRoom(ctx context.Context, roomID string) error
}

type inventoryService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewInventoryService(repo *repository.Repository, log *zap.Logger) InventoryService {
	return &inventoryService{
		repo: repo,
		log:  log.With(zap.String("service", "inventory")),
		now:  time.Now,
	}
}

func (s *inventoryService) CreateBranch(ctx context.Context, req *request.CreateBranchRequest) (*response.BranchResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	branches, err := s.repo.Branch.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	code := strings.ToUpper(req.Code)
	for _, b := range branches {
		if b.Code == code {
			return nil, apperror.New(apperror.KindInvalidInput, "branch code %s already exists", code)
		}
	}

	now := s.now().UTC()
	branch := &entity.Branch{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Code:     code,
		Name:     req.Name,
		Address:  req.Address,
		IsActive: true,
	}
	if err := s.repo.Branch.Create(ctx, branch); err != nil {
		return nil, fmt.Errorf("create branch: %w", err)
	}

	s.log.Info("Branch created", zap.String("branch_id", branch.ID.String()), zap.String("code", code))

	resp := response.BranchToResponse(branch)
	return &resp, nil
}

func (s *inventoryService) ListBranches(ctx context.Context) ([]response.BranchResponse, error) {
	branches, err := s.repo.Branch.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}

	resp := make([]response.BranchResponse, len(branches))
	for i, b := range branches {
		resp[i] = response.BranchToResponse(b)
	}
	return resp, nil
}

func (s *inventoryService) CreateRoomType(ctx context.Context, req *request.CreateRoomTypeRequest) (*response.RoomTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	baseRate, err := parseMoney("base_rate", req.BaseRate)
	if err != nil {
		return nil, err
	}
	size, err := parseMoney("size_sqm", req.SizeSqm)
	if err != nil {
		return nil, err
	}

	roomTypes, err := s.repo.RoomType.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list room types: %w", err)
	}
	code := strings.ToUpper(req.Code)
	for _, rt := range roomTypes {
		if rt.Code == code {
			return nil, apperror.New(apperror.KindInvalidInput, "room type code %s already exists", code)
		}
	}

	now := s.now().UTC()
	roomType := &entity.RoomType{
		Base:             entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Code:             code,
		Name:             req.Name,
		BedConfiguration: req.BedConfiguration,
		MaxOccupancy:     req.MaxOccupancy,
		SizeSqm:          size,
		BaseRate:         baseRate,
		IsActive:         true,
	}
	if err := s.repo.RoomType.Create(ctx, roomType); err != nil {
		return nil, fmt.Errorf("create room type: %w", err)
	}

	s.log.Info("Room type created",
		zap.String("room_type_id", roomType.ID.String()),
		zap.String("code", code),
		zap.Int("max_occupancy", roomType.MaxOccupancy),
	)

	resp := response.RoomTypeToResponse(roomType)
	return &resp, nil
}

func (s *inventoryService) ListRoomTypes(ctx context.Context) ([]response.RoomTypeResponse, error) {
	roomTypes, err := s.repo.RoomType.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list room types: %w", err)
	}

	resp := make([]response.RoomTypeResponse, len(roomTypes))
	for i, rt := range roomTypes {
		resp[i] = response.RoomTypeToResponse(rt)
	}
	return resp, nil
}

func (s *inventoryService) GetRoomType(ctx context.Context, roomTypeID string) (*response.RoomTypeResponse, error) {
	id, err := parseID("room type", roomTypeID)
	if err != nil {
		return nil, err
	}

	roomType, err := s.repo.RoomType.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room type: %w", err)
	}
	if roomType == nil {
		return nil, notFound("room type", roomTypeID)
	}

	resp := response.RoomTypeToResponse(roomType)
	return &resp, nil
}

func (s *inventoryService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	branchID, err := parseID("branch", req.BranchID)
	if err != nil {
		return nil, err
	}
	roomTypeID, err := parseID("room type", req.RoomTypeID)
	if err != nil {
		return nil, err
	}

	// 2. References must exist
	branch, err := s.repo.Branch.FindByID(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("find branch: %w", err)
	}
	if branch == nil {
		return nil, notFound("branch", req.BranchID)
	}

	roomType, err := s.repo.RoomType.FindByID(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("find room type: %w", err)
	}
	if roomType == nil {
		return nil, notFound("room type", req.RoomTypeID)
	}

	// 3. Room numbers are unique within a branch
	rooms, err := s.repo.Room.FindAll(ctx, repository.RoomFilter{BranchID: &branchID})
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	for _, r := range rooms {
		if r.Number == req.Number {
			return nil, apperror.New(apperror.KindInvalidInput, "room %s already exists in branch %s", req.Number, branch.Code)
		}
	}

	// 4. Save; new rooms start available
	now := s.now().UTC()
	room := &entity.Room{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		BranchID:   branchID,
		RoomTypeID: roomTypeID,
		Number:     req.Number,
		Floor:      req.Floor,
		Status:     entity.RoomStatusAvailable,
		IsActive:   true,
	}
	if err := s.repo.Room.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("number", room.Number),
		zap.String("branch", branch.Code),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *inventoryService) GetRoom(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	id, err := parseID("room", roomID)
	if err != nil {
		return nil, err
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return nil, notFound("room", roomID)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

// DeactivateRoom retires a room. An occupied room still belongs to a live booking
// and is refused.
func (s *inventoryService) DeactivateRoom(ctx context.Context, roomID string) error {
	id, err := parseID("room", roomID)
	if err != nil {
		return err
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return notFound("room", roomID)
	}
	if room.Status == entity.RoomStatusOccupied {
		return apperror.New(apperror.KindInvalidTransition, "room %s is occupied and cannot be deactivated", room.Number)
	}

	if err := s.repo.Room.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("deactivate room %s: %w", roomID, err)
	}
	return nil
}
