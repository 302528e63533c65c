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

// UserService manages staff accounts. Staff are the actors recorded as created_by
// on bookings and received_by on payments.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*response.UserResponse, error)
	CreateStaff(ctx context.Context, req *request.CreateStaffRequest) (*response.UserResponse, error)
	GetAllStaff(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	DeactivateStaff(ctx context.Context, actorID, userID string) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	id, err := parseID("user", userID)
	if err != nil {
		return nil, err
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if user == nil {
		return nil, notFound("user", userID)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) CreateStaff(ctx context.Context, req *request.CreateStaffRequest) (*response.UserResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Create staff validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	// 2. Email and username must be unused
	existing, err := us.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, apperror.New(apperror.KindInvalidInput, "email already registered")
	}

	existing, err = us.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, apperror.New(apperror.KindInvalidInput, "username already taken")
	}

	// 3. Hash password
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 4. Save
	now := time.Now().UTC()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hashed,
		FullName:     req.FullName,
		Role:         entity.UserRole(req.Role),
		IsActive:     true,
	}

	if err := us.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create staff: %w", err)
	}

	us.log.Info("Staff created",
		zap.String("user_id", user.ID.String()),
		zap.String("role", req.Role),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetAllStaff(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := us.userRepo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get staff: %w", err)
	}

	total, err := us.userRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count staff: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.Limit(), total), nil
}

func (us *userService) DeactivateStaff(ctx context.Context, actorID, userID string) error {
	id, err := parseID("user", userID)
	if err != nil {
		return err
	}
	if actorID == userID {
		return apperror.New(apperror.KindInvalidInput, "cannot deactivate your own account")
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find staff %s: %w", userID, err)
	}
	if user == nil {
		return notFound("user", userID)
	}

	if err := us.userRepo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("deactivate staff %s: %w", userID, err)
	}

	us.log.Info("Staff deactivated", zap.String("user_id", userID))
	return nil
}
