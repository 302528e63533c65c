package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/apperror"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PaymentService interface {
	// SettlePayment appends a payment to the booking's ledger. The ledger sum is
	// re-read under the booking row lock so concurrent payments cannot overrun the total.
	SettlePayment(ctx context.Context, actorID, bookingID string, req *request.SettlePaymentRequest) (*response.SettlementResponse, error)
	SuggestAmount(ctx context.Context, bookingID, settlementType string) (*response.SuggestedAmountResponse, error)
	GetFinancials(ctx context.Context, bookingID string) (*response.FinancialsResponse, error)
	ListPayments(ctx context.Context, bookingID string) ([]response.PaymentResponse, error)
	GetPaymentMethods(ctx context.Context) []entity.PaymentMethod
}

type paymentService struct {
	repo   *repository.Repository
	tx     repository.Transactor
	config utils.BookingConfig
	log    *zap.Logger
	now    func() time.Time
}

func NewPaymentService(repo *repository.Repository, tx repository.Transactor, config utils.BookingConfig, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:   repo,
		tx:     tx,
		config: config,
		log:    log.With(zap.String("service", "payment")),
		now:    time.Now,
	}
}

func (s *paymentService) SettlePayment(ctx context.Context, actorID, bookingID string, req *request.SettlePaymentRequest) (*response.SettlementResponse, error) {
	// 1. Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Settle payment validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	id, err := parseID("booking", bookingID)
	if err != nil {
		return nil, err
	}
	actor, err := parseOptionalID("actor", actorID)
	if err != nil {
		return nil, err
	}

	var (
		payment  *entity.Payment
		ledger   []*entity.Payment
		replayed bool
	)
	err = s.tx.WithinTx(ctx, func(tx *repository.Repository) error {
		// 2. Lock the booking; concurrent payments on it queue here
		booking, err := tx.Booking.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if booking == nil {
			return notFound("booking", bookingID)
		}

		if ledger, err = tx.Payment.FindByBookingID(ctx, id); err != nil {
			return err
		}

		// 3. A replayed idempotency key returns the payment it first recorded
		if req.IdempotencyKey != nil {
			prior, err := tx.Payment.FindByIdempotencyKey(ctx, *req.IdempotencyKey)
			if err != nil {
				return err
			}
			if prior != nil {
				if prior.BookingID != id {
					return apperror.New(apperror.KindInvalidInput, "idempotency key already used for another booking")
				}
				payment, replayed = prior, true
				return nil
			}
		}

		// 4. Settlement rules against the current ledger
		f := entity.ComputeFinancials(booking, ledger)
		if !f.AcceptsPayments {
			return apperror.New(apperror.KindBookingNotPayable,
				"booking %s is %s with balance %s and does not accept payments",
				booking.ReferenceCode, booking.Status, f.BalanceAmount.StringFixed(2))
		}

		method := entity.PaymentMethod(req.Method)
		if !method.IsValid() {
			return apperror.New(apperror.KindInvalidPaymentMethod, "payment method %q is not supported", req.Method)
		}

		settlement := entity.SettlementType(req.SettlementType)
		amount, err := s.resolveAmount(f, settlement, req.Amount)
		if err != nil {
			return err
		}

		limit := f.BalanceAmount.Add(s.config.RoundingTolerance)
		if amount.GreaterThan(limit) {
			return apperror.New(apperror.KindAmountExceedsBalance,
				"amount %s exceeds the outstanding balance %s", amount.StringFixed(2), f.BalanceAmount.StringFixed(2))
		}

		// 5. Append
		now := s.now().UTC()
		p := &entity.Payment{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			BookingID:            id,
			Amount:               amount,
			Method:               method,
			SettlementType:       settlement,
			TransactionReference: req.TransactionReference,
			ReceiptNumber:        utils.GenerateReceiptNumber(now),
			IdempotencyKey:       req.IdempotencyKey,
			ReceivedBy:           actor,
		}
		if err := tx.Payment.Create(ctx, p); err != nil {
			if errors.Is(err, repository.ErrIdempotencyKeyTaken) {
				return apperror.New(apperror.KindInvalidInput, "idempotency key already used for another booking")
			}
			return err
		}

		payment = p
		ledger = append(ledger, p)
		return nil
	})
	if err != nil {
		if apperror.KindOf(err) != "" {
			s.log.Info("Payment rejected",
				zap.String("booking_id", bookingID),
				zap.String("kind", string(apperror.KindOf(err))),
				zap.String("reason", err.Error()),
			)
		}
		return nil, wrapTxError("settle payment", err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload booking %s: %w", bookingID, err)
	}
	f := entity.ComputeFinancials(booking, ledger)

	if replayed {
		s.log.Info("Payment replayed",
			zap.String("booking_id", bookingID),
			zap.String("payment_id", payment.ID.String()),
		)
	} else {
		s.log.Info("Payment recorded",
			zap.String("booking_id", bookingID),
			zap.String("payment_id", payment.ID.String()),
			zap.String("receipt_number", payment.ReceiptNumber),
			zap.String("amount", payment.Amount.StringFixed(2)),
			zap.String("method", string(payment.Method)),
			zap.String("balance", f.BalanceAmount.StringFixed(2)),
		)
	}

	return &response.SettlementResponse{
		Payment:    response.PaymentToResponse(payment),
		Financials: response.FinancialsToResponse(f),
		Replayed:   replayed,
	}, nil
}

// resolveAmount takes the explicit amount or falls back to the suggestion for the
// settlement type. partial_payment has no suggestion.
func (s *paymentService) resolveAmount(f entity.Financials, t entity.SettlementType, raw string) (decimal.Decimal, error) {
	if raw == "" {
		amount, ok := f.SuggestAmount(t, s.config.DownPaymentRatio, s.config.DownPaymentCap)
		if !ok {
			return decimal.Zero, apperror.New(apperror.KindInvalidInput, "amount is required for %s", t)
		}
		return amount, nil
	}

	amount, err := parseMoney("amount", raw)
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, apperror.New(apperror.KindInvalidInput, "amount must be greater than zero")
	}
	return amount, nil
}

func (s *paymentService) SuggestAmount(ctx context.Context, bookingID, settlementType string) (*response.SuggestedAmountResponse, error) {
	t := entity.SettlementType(settlementType)
	if !t.IsValid() {
		return nil, apperror.New(apperror.KindInvalidInput, "unknown settlement type %q", settlementType)
	}

	f, err := s.financials(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	resp := &response.SuggestedAmountResponse{SettlementType: t}
	if amount, ok := f.SuggestAmount(t, s.config.DownPaymentRatio, s.config.DownPaymentCap); ok {
		v := response.Money(amount)
		resp.Amount = &v
	}
	return resp, nil
}

func (s *paymentService) GetFinancials(ctx context.Context, bookingID string) (*response.FinancialsResponse, error) {
	f, err := s.financials(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	resp := response.FinancialsToResponse(f)
	return &resp, nil
}

func (s *paymentService) ListPayments(ctx context.Context, bookingID string) ([]response.PaymentResponse, error) {
	_, payments, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.PaymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = response.PaymentToResponse(p)
	}
	return resp, nil
}

func (s *paymentService) GetPaymentMethods(ctx context.Context) []entity.PaymentMethod {
	return entity.PaymentMethods
}

func (s *paymentService) financials(ctx context.Context, bookingID string) (entity.Financials, error) {
	booking, payments, err := s.load(ctx, bookingID)
	if err != nil {
		return entity.Financials{}, err
	}
	return entity.ComputeFinancials(booking, payments), nil
}

func (s *paymentService) load(ctx context.Context, bookingID string) (*entity.Booking, []*entity.Payment, error) {
	id, err := parseID("booking", bookingID)
	if err != nil {
		return nil, nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, nil, notFound("booking", bookingID)
	}

	payments, err := s.repo.Payment.FindByBookingID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("load payments of booking %s: %w", bookingID, err)
	}
	return booking, payments, nil
}
