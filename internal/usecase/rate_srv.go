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

type RateService interface {
	// ResolveRate returns the rate that prices a stay of the given room type,
	// day type and duration right now, or RATE_NOT_FOUND.
	ResolveRate(ctx context.Context, req *request.ResolveRateRequest) (*response.RateResponse, error)

	CreateRateType(ctx context.Context, req *request.CreateRateTypeRequest) (*response.RateTypeResponse, error)
	ListRateTypes(ctx context.Context) ([]response.RateTypeResponse, error)

	CreateRate(ctx context.Context, req *request.CreateRateRequest) (*response.RateResponse, error)
	ListRates(ctx context.Context, roomTypeID string) ([]response.RateResponse, error)
	DeactivateRate(ctx context.Context, rateID string) error
}

type rateService struct {
	repo   *repository.Repository
	config utils.BookingConfig
	log    *zap.Logger
	now    func() time.Time
}

func NewRateService(repo *repository.Repository, config utils.BookingConfig, log *zap.Logger) RateService {
	return &rateService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "rate")),
		now:    time.Now,
	}
}

func (s *rateService) ResolveRate(ctx context.Context, req *request.ResolveRateRequest) (*response.RateResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	roomTypeID, err := parseID("room type", req.RoomTypeID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	rate, err := resolveRate(ctx, s.repo.Rate, roomTypeID, entity.DayType(req.DayType), req.Duration, now)
	if err != nil {
		return nil, err
	}

	resp := response.RateToResponse(rate, now)
	return &resp, nil
}

// resolveRate loads every rate of the room type and picks one with pickRate.
func resolveRate(ctx context.Context, rates repository.RateRepository, roomTypeID uuid.UUID, dayType entity.DayType, duration int, now time.Time) (*entity.Rate, error) {
	if !dayType.IsValid() {
		return nil, apperror.New(apperror.KindInvalidInput, "day type must be weekday or weekend, got %q", dayType)
	}
	if duration <= 0 {
		return nil, apperror.New(apperror.KindInvalidInput, "duration must be positive, got %d", duration)
	}

	candidates, err := rates.FindByRoomTypeID(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("load rates of room type %s: %w", roomTypeID.String(), err)
	}

	rate := pickRate(candidates, dayType, duration, now)
	if rate == nil {
		return nil, apperror.New(apperror.KindRateNotFound,
			"no active rate for room type %s, %s, %d hours", roomTypeID.String(), dayType, duration)
	}
	return rate, nil
}

// pickRate keeps rates whose rate type matches dayType and duration exactly and
// that are active and inside their effective window at now. The latest
// EffectiveFrom wins. Expired and future rates are never a fallback.
func pickRate(rates []*entity.Rate, dayType entity.DayType, duration int, now time.Time) *entity.Rate {
	var best *entity.Rate
	for _, r := range rates {
		if r.RateType == nil || !r.RateType.Matches(dayType, duration) {
			continue
		}
		if !r.Applicable(now) {
			continue
		}
		if best == nil || r.EffectiveFrom.After(best.EffectiveFrom) {
			best = r
		}
	}
	return best
}

func (s *rateService) CreateRateType(ctx context.Context, req *request.CreateRateTypeRequest) (*response.RateTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	// (duration, day type) is the lookup key and must stay unique
	existing, err := s.repo.RateType.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rate types: %w", err)
	}
	dayType := entity.DayType(req.DayType)
	for _, rt := range existing {
		if rt.Matches(dayType, req.Duration) {
			return nil, apperror.New(apperror.KindInvalidInput,
				"rate type for %d hours on %s already exists", req.Duration, dayType)
		}
	}

	now := s.now().UTC()
	rateType := &entity.RateType{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:         req.Name,
		Duration:     req.Duration,
		DurationUnit: entity.DurationUnitHours,
		DayType:      dayType,
		Description:  req.Description,
	}
	if err := s.repo.RateType.Create(ctx, rateType); err != nil {
		return nil, fmt.Errorf("create rate type: %w", err)
	}

	s.log.Info("Rate type created",
		zap.String("rate_type_id", rateType.ID.String()),
		zap.Int("duration", rateType.Duration),
		zap.String("day_type", string(rateType.DayType)),
	)

	resp := response.RateTypeToResponse(rateType)
	return &resp, nil
}

func (s *rateService) ListRateTypes(ctx context.Context) ([]response.RateTypeResponse, error) {
	rateTypes, err := s.repo.RateType.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rate types: %w", err)
	}

	resp := make([]response.RateTypeResponse, len(rateTypes))
	for i, rt := range rateTypes {
		resp[i] = response.RateTypeToResponse(rt)
	}
	return resp, nil
}

func (s *rateService) CreateRate(ctx context.Context, req *request.CreateRateRequest) (*response.RateResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	roomTypeID, err := parseID("room type", req.RoomTypeID)
	if err != nil {
		return nil, err
	}
	rateTypeID, err := parseID("rate type", req.RateTypeID)
	if err != nil {
		return nil, err
	}
	branchID, err := parseID("branch", req.BranchID)
	if err != nil {
		return nil, err
	}
	amount, err := parseMoney("base_amount", req.BaseAmount)
	if err != nil {
		return nil, err
	}

	// 2. Effective window
	from, err := parseTime("effective_from", req.EffectiveFrom)
	if err != nil {
		return nil, err
	}
	var to *time.Time
	if req.EffectiveTo != nil {
		t, err := parseTime("effective_to", *req.EffectiveTo)
		if err != nil {
			return nil, err
		}
		if t.Before(from) {
			return nil, apperror.New(apperror.KindInvalidInput, "effective_to must not be before effective_from")
		}
		to = &t
	}

	// 3. References must exist
	roomType, err := s.repo.RoomType.FindByID(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("find room type: %w", err)
	}
	if roomType == nil {
		return nil, notFound("room type", req.RoomTypeID)
	}
	rateType, err := s.repo.RateType.FindByID(ctx, rateTypeID)
	if err != nil {
		return nil, fmt.Errorf("find rate type: %w", err)
	}
	if rateType == nil {
		return nil, notFound("rate type", req.RateTypeID)
	}
	branch, err := s.repo.Branch.FindByID(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("find branch: %w", err)
	}
	if branch == nil {
		return nil, notFound("branch", req.BranchID)
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = s.config.Currency
	}

	// 4. Save
	now := s.now().UTC()
	rate := &entity.Rate{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		RoomTypeID:    roomTypeID,
		RateTypeID:    rateTypeID,
		BranchID:      branchID,
		Currency:      currency,
		BaseAmount:    amount,
		EffectiveFrom: from,
		EffectiveTo:   to,
		IsActive:      true,
		RateType:      rateType,
	}
	if err := s.repo.Rate.Create(ctx, rate); err != nil {
		return nil, fmt.Errorf("create rate: %w", err)
	}

	s.log.Info("Rate created",
		zap.String("rate_id", rate.ID.String()),
		zap.String("room_type", roomType.Code),
		zap.String("amount", amount.String()),
		zap.Time("effective_from", from),
	)

	resp := response.RateToResponse(rate, now)
	return &resp, nil
}

func (s *rateService) ListRates(ctx context.Context, roomTypeID string) ([]response.RateResponse, error) {
	id, err := parseID("room type", roomTypeID)
	if err != nil {
		return nil, err
	}

	rates, err := s.repo.Rate.FindByRoomTypeID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list rates: %w", err)
	}

	now := s.now().UTC()
	resp := make([]response.RateResponse, len(rates))
	for i, r := range rates {
		resp[i] = response.RateToResponse(r, now)
	}
	return resp, nil
}

func (s *rateService) DeactivateRate(ctx context.Context, rateID string) error {
	id, err := parseID("rate", rateID)
	if err != nil {
		return err
	}

	rate, err := s.repo.Rate.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find rate: %w", err)
	}
	if rate == nil {
		return notFound("rate", rateID)
	}

	if err := s.repo.Rate.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("deactivate rate %s: %w", rateID, err)
	}

	s.log.Info("Rate deactivated", zap.String("rate_id", rateID))
	return nil
}
