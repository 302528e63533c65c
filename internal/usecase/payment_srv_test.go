package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) pay(bookingID, amount, method string, t entity.SettlementType) error {
	req := &request.SettlePaymentRequest{Amount: amount, Method: method, SettlementType: string(t)}
	_, err := f.svc.Payment.SettlePayment(context.Background(), f.staffID, bookingID, req)
	return err
}

func TestSettlePayment_DownPaymentThenBalance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.book(t)

	down, err := f.svc.Payment.SettlePayment(ctx, f.staffID, id, &request.SettlePaymentRequest{
		Amount:         "750",
		Method:         "cash",
		SettlementType: "down_payment",
	})
	require.NoError(t, err)
	assert.Equal(t, "750.00", down.Payment.Amount)
	assert.Equal(t, "750.00", down.Financials.BalanceAmount)
	assert.False(t, down.Financials.IsFullyPaid)
	assert.True(t, down.Financials.HasBalance)
	assert.Equal(t, entity.PaymentStatusPartial, down.Financials.PaymentStatus)
	assert.Regexp(t, `^OR-20261014-\d{6}$`, down.Payment.ReceiptNumber)

	settle, err := f.svc.Payment.SettlePayment(ctx, f.staffID, id, &request.SettlePaymentRequest{
		Amount:         "750",
		Method:         "gcash",
		SettlementType: "balance_settlement",
	})
	require.NoError(t, err)
	assert.Equal(t, "0.00", settle.Financials.BalanceAmount)
	assert.Equal(t, "1500.00", settle.Financials.TotalPaid)
	assert.True(t, settle.Financials.IsFullyPaid)
	assert.False(t, settle.Financials.AcceptsPayments)
	assert.Equal(t, entity.PaymentStatusPaid, settle.Financials.PaymentStatus)

	err = f.pay(id, "1", "cash", entity.SettlementPartialPayment)
	assert.ErrorIs(t, err, apperror.ErrBookingNotPayable)
	assert.Equal(t, 2, f.store.paymentCount())

	detail, err := f.svc.Booking.GetBooking(ctx, id)
	require.NoError(t, err)
	assert.Len(t, detail.Payments, 2)
	assert.Equal(t, entity.PaymentStatusPaid, detail.PaymentStatus)
}

func TestSettlePayment_Boundary(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   error
	}{
		{"exact balance", "1500", nil},
		{"within tolerance", "1501.00", nil},
		{"beyond tolerance", "1501.01", apperror.ErrAmountExceedsBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			id := f.book(t)

			err := f.pay(id, tt.amount, "card", entity.SettlementBalanceSettlement)

			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				assert.Zero(t, f.store.paymentCount())
				return
			}
			require.NoError(t, err)
			fin, err := f.svc.Payment.GetFinancials(context.Background(), id)
			require.NoError(t, err)
			assert.True(t, fin.IsFullyPaid)
		})
	}
}

func TestSettlePayment_BoundaryAfterPartial(t *testing.T) {
	f := newFixture(t)
	id := f.book(t)
	err := f.pay(id, "400", "cash", entity.SettlementPartialPayment)
	require.NoError(t, err)

	// balance is 1100.00
	err = f.pay(id, "1101.01", "cash", entity.SettlementBalanceSettlement)
	assert.ErrorIs(t, err, apperror.ErrAmountExceedsBalance)

	err = f.pay(id, "1100", "cash", entity.SettlementBalanceSettlement)
	require.NoError(t, err)
}

func TestSettlePayment_LedgerIsMonotonic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.book(t)

	prevPaid := decimal.Zero
	prevBalance := money("1500")
	for _, amount := range []string{"100", "250.50", "0.50", "1500", "649", "500"} {
		_ = f.pay(id, amount, "cash", entity.SettlementPartialPayment)

		fin, err := f.svc.Payment.GetFinancials(ctx, id)
		require.NoError(t, err)
		paid, balance := money(fin.TotalPaid), money(fin.BalanceAmount)

		assert.True(t, paid.GreaterThanOrEqual(prevPaid), "total paid went from %s to %s", prevPaid, paid)
		assert.True(t, balance.LessThanOrEqual(prevBalance), "balance went from %s to %s", prevBalance, balance)
		assert.True(t, money(fin.TotalAmount).Sub(paid).Equal(balance))
		prevPaid, prevBalance = paid, balance
	}
	assert.True(t, prevPaid.Equal(money("1500")), prevPaid.String())
}

func TestSettlePayment_SuggestedAmounts(t *testing.T) {
	t.Run("down payment is half the total", func(t *testing.T) {
		f := newFixture(t)
		id := f.book(t)

		resp, err := f.svc.Payment.SettlePayment(context.Background(), f.staffID, id, &request.SettlePaymentRequest{
			Method:         "cash",
			SettlementType: "down_payment",
		})

		require.NoError(t, err)
		assert.Equal(t, "750.00", resp.Payment.Amount)
	})

	t.Run("down payment is capped", func(t *testing.T) {
		f := newFixture(t)
		rate := f.store.rates[f.rate.ID]
		rate.BaseAmount = money("3000")
		f.store.rates[rate.ID] = rate
		id := f.book(t)

		suggestion, err := f.svc.Payment.SuggestAmount(context.Background(), id, "down_payment")

		require.NoError(t, err)
		require.NotNil(t, suggestion.Amount)
		assert.Equal(t, "1000.00", *suggestion.Amount)
	})

	t.Run("balance settlement takes the balance", func(t *testing.T) {
		f := newFixture(t)
		id := f.book(t)
		err := f.pay(id, "333.33", "cash", entity.SettlementPartialPayment)
		require.NoError(t, err)

		resp, err := f.svc.Payment.SettlePayment(context.Background(), f.staffID, id, &request.SettlePaymentRequest{
			Method:         "maya",
			SettlementType: "balance_settlement",
		})

		require.NoError(t, err)
		assert.Equal(t, "1166.67", resp.Payment.Amount)
		assert.True(t, resp.Financials.IsFullyPaid)
	})

	t.Run("partial payment needs an amount", func(t *testing.T) {
		f := newFixture(t)
		id := f.book(t)

		err := f.pay(id, "", "cash", entity.SettlementPartialPayment)
		assert.ErrorIs(t, err, apperror.ErrInvalidInput)

		suggestion, err := f.svc.Payment.SuggestAmount(context.Background(), id, "partial_payment")
		require.NoError(t, err)
		assert.Nil(t, suggestion.Amount)
	})
}

func TestSettlePayment_Rejections(t *testing.T) {
	f := newFixture(t)
	id := f.book(t)

	tests := []struct {
		name   string
		amount string
		method string
		want   error
	}{
		{"unknown method", "100", "barter", apperror.ErrInvalidPaymentMethod},
		{"empty method", "100", "", apperror.ErrInvalidPaymentMethod},
		{"zero amount", "0", "cash", apperror.ErrInvalidInput},
		{"negative amount", "-10", "cash", apperror.ErrInvalidInput},
		{"not a number", "ten", "cash", apperror.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.pay(id, tt.amount, tt.method, entity.SettlementPartialPayment)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Zero(t, f.store.paymentCount())
}

func TestSettlePayment_CancelledBookingIsNotPayable(t *testing.T) {
	f := newFixture(t)
	id := f.book(t)
	_, err := f.svc.Booking.CancelBooking(context.Background(), id)
	require.NoError(t, err)

	err = f.pay(id, "100", "cash", entity.SettlementDownPayment)

	assert.ErrorIs(t, err, apperror.ErrBookingNotPayable)
}

func TestSettlePayment_UnknownBooking(t *testing.T) {
	f := newFixture(t)

	err := f.pay(uuid.NewString(), "100", "cash", entity.SettlementDownPayment)

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestSettlePayment_IdempotencyKey(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.book(t)
	req := &request.SettlePaymentRequest{
		Amount:         "500",
		Method:         "card",
		SettlementType: "partial_payment",
		IdempotencyKey: ptr("terminal-7-000123"),
	}

	first, err := f.svc.Payment.SettlePayment(ctx, f.staffID, id, req)
	require.NoError(t, err)
	assert.False(t, first.Replayed)

	again, err := f.svc.Payment.SettlePayment(ctx, f.staffID, id, req)
	require.NoError(t, err)
	assert.True(t, again.Replayed)
	assert.Equal(t, first.Payment.ID, again.Payment.ID)
	assert.Equal(t, "1000.00", again.Financials.BalanceAmount)
	assert.Equal(t, 1, f.store.paymentCount())

	other := f.addRoom("105", entity.RoomStatusAvailable)
	resp, err := f.svc.Booking.CreateBooking(ctx, f.staffID, f.bookingRequest(other.ID))
	require.NoError(t, err)
	_, err = f.svc.Payment.SettlePayment(ctx, f.staffID, resp.ID, req)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestSettlePayment_IdempotencyKeyClaimedConcurrently(t *testing.T) {
	f := newFixture(t)
	id := f.book(t)
	// the key lookup saw nothing but another booking's insert won the unique index
	f.store.failPaymentCreate = fmt.Errorf("create payment RCP-1: %w", repository.ErrIdempotencyKeyTaken)
	req := &request.SettlePaymentRequest{
		Amount:         "500",
		Method:         "card",
		SettlementType: "partial_payment",
		IdempotencyKey: ptr("terminal-7-000124"),
	}

	_, err := f.svc.Payment.SettlePayment(context.Background(), f.staffID, id, req)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
	assert.Zero(t, f.store.paymentCount())
}

func TestSettlePayment_FailedInsertLeavesLedgerUntouched(t *testing.T) {
	f := newFixture(t)
	id := f.book(t)
	f.store.failPaymentCreate = errors.New("disk full")

	err := f.pay(id, "100", "cash", entity.SettlementPartialPayment)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "settle payment")
	assert.Zero(t, f.store.paymentCount())
}

func TestSettlePayment_ConcurrentPaymentsNeverOverrun(t *testing.T) {
	f := newFixture(t)
	id := f.book(t)
	const attempts = 10

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := f.pay(id, "300", "cash", entity.SettlementPartialPayment)
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
				return
			}
			assert.True(t,
				errors.Is(err, apperror.ErrBookingNotPayable) || errors.Is(err, apperror.ErrAmountExceedsBalance),
				err.Error())
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, accepted)
	fin, err := f.svc.Payment.GetFinancials(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "1500.00", fin.TotalPaid)
	assert.True(t, fin.IsFullyPaid)
}

func TestListPayments(t *testing.T) {
	f := newFixture(t)
	id := f.book(t)
	ref := "GC-88921"
	_, err := f.svc.Payment.SettlePayment(context.Background(), f.staffID, id, &request.SettlePaymentRequest{
		Amount:               "200",
		Method:               "gcash",
		SettlementType:       "partial_payment",
		TransactionReference: &ref,
	})
	require.NoError(t, err)

	payments, err := f.svc.Payment.ListPayments(context.Background(), id)

	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, entity.PaymentMethodGCash, payments[0].Method)
	require.NotNil(t, payments[0].TransactionReference)
	assert.Equal(t, ref, *payments[0].TransactionReference)
}

func TestGetPaymentMethods(t *testing.T) {
	f := newFixture(t)

	methods := f.svc.Payment.GetPaymentMethods(context.Background())

	assert.Equal(t, entity.PaymentMethods, methods)
	assert.Contains(t, methods, entity.PaymentMethodCash)
}
