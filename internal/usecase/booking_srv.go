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

type BookingService interface {
	// CreateBooking books an available room. The booking row and the room's move to
	// occupied commit together or not at all.
	CreateBooking(ctx context.Context, actorID string, req *request.CreateBookingRequest) (*response.BookingDetailResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error)
	GetBookingByReference(ctx context.Context, referenceCode string) (*response.BookingDetailResponse, error)
	ListBookings(ctx context.Context, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error)

	CheckIn(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error)
	CheckOut(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error)
	CancelBooking(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error)
	UpdateNotes(ctx context.Context, bookingID string, req *request.UpdateNotesRequest) (*response.BookingDetailResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	tx     repository.Transactor
	config utils.BookingConfig
	log    *zap.Logger
	now    func() time.Time
}

func NewBookingService(repo *repository.Repository, tx repository.Transactor, config utils.BookingConfig, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		tx:     tx,
		config: config,
		log:    log.With(zap.String("service", "booking")),
		now:    time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, actorID string, req *request.CreateBookingRequest) (*response.BookingDetailResponse, error) {
	// 1. Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	roomID, err := parseID("room", req.RoomID)
	if err != nil {
		return nil, err
	}
	actor, err := parseOptionalID("actor", actorID)
	if err != nil {
		return nil, err
	}
	discount, err := parseMoney("discount_amount", req.DiscountAmount)
	if err != nil {
		return nil, err
	}
	tax, err := parseMoney("tax_amount", req.TaxAmount)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	checkIn := now
	if req.CheckInAt != "" {
		if checkIn, err = parseTime("check_in_at", req.CheckInAt); err != nil {
			return nil, err
		}
	}

	dayType := entity.DayType(req.DayType)
	if dayType == "" {
		dayType = entity.DayTypeOf(checkIn)
	}

	source := entity.BookingSource(req.Source)
	if source == "" {
		source = entity.BookingSourceWalkIn
	}

	// 2. Everything below runs with the room row locked
	var booking *entity.Booking
	err = s.tx.WithinTx(ctx, func(tx *repository.Repository) error {
		room, err := lockRoom(ctx, tx, roomID)
		if err != nil {
			return err
		}

		// A non-available room is rejected before any booking is built
		if err := room.Selectable(); err != nil {
			return err
		}

		roomType, err := tx.RoomType.FindByID(ctx, room.RoomTypeID)
		if err != nil {
			return err
		}
		if roomType == nil {
			return notFound("room type", room.RoomTypeID.String())
		}
		if !roomType.Fits(req.GuestCount) {
			return apperror.New(apperror.KindOccupancyExceeded,
				"%d guests exceed the maximum of %d for %s", req.GuestCount, roomType.MaxOccupancy, roomType.Name)
		}

		rate, err := resolveRate(ctx, tx.Rate, room.RoomTypeID, dayType, req.Duration, now)
		if err != nil {
			return err
		}

		b := &entity.Booking{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			ReferenceCode:      utils.GenerateReferenceCode(now),
			RoomID:             room.ID,
			RateID:             rate.ID,
			GuestName:          req.GuestName,
			GuestCount:         req.GuestCount,
			CheckInAt:          checkIn,
			ExpectedCheckoutAt: checkIn.Add(rate.RateType.Length()),
			Status:             entity.BookingStatusConfirmed,
			BaseAmount:         rate.BaseAmount,
			DiscountAmount:     discount,
			TaxAmount:          tax,
			Currency:           rate.Currency,
			Source:             source,
			Notes:              req.Notes,
			CreatedBy:          actor,
		}
		if b.TotalAmount().IsNegative() {
			return apperror.New(apperror.KindInvalidInput,
				"discount %s exceeds the rate amount %s", discount.StringFixed(2), rate.BaseAmount.StringFixed(2))
		}

		if err := transitionRoom(ctx, tx, room, entity.RoomEventBookingConfirmed, now); err != nil {
			return err
		}
		if err := tx.Booking.Create(ctx, b); err != nil {
			return err
		}

		booking = b
		return nil
	})
	if err != nil {
		if apperror.KindOf(err) != "" {
			s.log.Info("Booking rejected",
				zap.String("room_id", req.RoomID),
				zap.String("kind", string(apperror.KindOf(err))),
				zap.String("reason", err.Error()),
			)
		}
		return nil, wrapTxError("create booking", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference_code", booking.ReferenceCode),
		zap.String("room_id", req.RoomID),
		zap.String("total_amount", booking.TotalAmount().StringFixed(2)),
	)

	resp := response.BookingToDetailResponse(booking, nil)
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error) {
	id, err := parseID("booking", bookingID)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, notFound("booking", bookingID)
	}

	return s.detail(ctx, booking)
}

func (s *bookingService) GetBookingByReference(ctx context.Context, referenceCode string) (*response.BookingDetailResponse, error) {
	booking, err := s.repo.Booking.FindByReference(ctx, referenceCode)
	if err != nil {
		return nil, fmt.Errorf("get booking by reference: %w", err)
	}
	if booking == nil {
		return nil, notFound("booking", referenceCode)
	}

	return s.detail(ctx, booking)
}

func (s *bookingService) ListBookings(ctx context.Context, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	var status *entity.BookingStatus
	if req.Status != "" {
		st := entity.BookingStatus(req.Status)
		status = &st
	}

	bookings, err := s.repo.Booking.FindAll(ctx, status, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	ids := make([]uuid.UUID, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
	}
	ledgers, err := s.repo.Payment.FindByBookingIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load payments of %d bookings: %w", len(ids), err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		bookingResponses[i] = response.BookingToResponse(b, entity.ComputeFinancials(b, ledgers[b.ID]))
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.Limit(), total), nil
}

func (s *bookingService) CheckIn(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error) {
	return s.mutate(ctx, bookingID, "check in", func(tx *repository.Repository, b *entity.Booking, now time.Time) error {
		return b.Transition(entity.BookingStatusCheckedIn, now)
	})
}

// CheckOut closes the stay and sends the room to housekeeping. A room flagged for
// maintenance during the stay keeps that status.
func (s *bookingService) CheckOut(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error) {
	return s.mutate(ctx, bookingID, "check out", func(tx *repository.Repository, b *entity.Booking, now time.Time) error {
		if err := b.Transition(entity.BookingStatusCheckedOut, now); err != nil {
			return err
		}
		return s.releaseRoom(ctx, tx, b.RoomID, entity.RoomEventCheckedOut, now)
	})
}

// CancelBooking frees the room of a pending or confirmed booking. Recorded
// payments stay in the ledger.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error) {
	return s.mutate(ctx, bookingID, "cancel booking", func(tx *repository.Repository, b *entity.Booking, now time.Time) error {
		if err := b.Transition(entity.BookingStatusCancelled, now); err != nil {
			return err
		}
		return s.releaseRoom(ctx, tx, b.RoomID, entity.RoomEventBookingCancelled, now)
	})
}

// UpdateNotes is the only change a terminal booking accepts.
func (s *bookingService) UpdateNotes(ctx context.Context, bookingID string, req *request.UpdateNotesRequest) (*response.BookingDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	return s.mutate(ctx, bookingID, "update notes", func(tx *repository.Repository, b *entity.Booking, now time.Time) error {
		b.Notes = req.Notes
		b.UpdatedAt = now
		return nil
	})
}

// mutate locks the booking, applies fn and saves the result in one transaction.
func (s *bookingService) mutate(
	ctx context.Context,
	bookingID string,
	op string,
	fn func(tx *repository.Repository, b *entity.Booking, now time.Time) error,
) (*response.BookingDetailResponse, error) {
	id, err := parseID("booking", bookingID)
	if err != nil {
		return nil, err
	}

	var (
		booking  *entity.Booking
		payments []*entity.Payment
	)
	err = s.tx.WithinTx(ctx, func(tx *repository.Repository) error {
		b, err := tx.Booking.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if b == nil {
			return notFound("booking", bookingID)
		}

		if err := fn(tx, b, s.now().UTC()); err != nil {
			return err
		}
		if err := tx.Booking.Update(ctx, b); err != nil {
			return err
		}

		if payments, err = tx.Payment.FindByBookingID(ctx, b.ID); err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, wrapTxError(op, err)
	}

	s.log.Info("Booking updated",
		zap.String("booking_id", bookingID),
		zap.String("operation", op),
		zap.String("status", string(booking.Status)),
	)

	resp := response.BookingToDetailResponse(booking, payments)
	return &resp, nil
}

// releaseRoom applies event only to a room the booking still occupies. Any other
// status was set by housekeeping or maintenance and is left alone.
func (s *bookingService) releaseRoom(ctx context.Context, tx *repository.Repository, roomID uuid.UUID, event entity.RoomEvent, now time.Time) error {
	room, err := lockRoom(ctx, tx, roomID)
	if err != nil {
		return err
	}
	if room.Status != entity.RoomStatusOccupied {
		s.log.Info("Room not released",
			zap.String("room_id", roomID.String()),
			zap.String("event", string(event)),
			zap.String("status", string(room.Status)),
		)
		return nil
	}
	return transitionRoom(ctx, tx, room, event, now)
}

func (s *bookingService) detail(ctx context.Context, booking *entity.Booking) (*response.BookingDetailResponse, error) {
	payments, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("load payments of booking %s: %w", booking.ID.String(), err)
	}

	resp := response.BookingToDetailResponse(booking, payments)
	return &resp, nil
}
