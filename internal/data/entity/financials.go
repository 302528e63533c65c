package entity

import "github.com/shopspring/decimal"

type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Financials is the read-side view of a booking's money. It is recomputed from the
// ledger on every read and never persisted.
type Financials struct {
	TotalAmount     decimal.Decimal
	TotalPaid       decimal.Decimal
	BalanceAmount   decimal.Decimal
	IsFullyPaid     bool
	HasBalance      bool
	AcceptsPayments bool
	PaymentStatus   PaymentStatus
}

func ComputeFinancials(b *Booking, payments []*Payment) Financials {
	totalPaid := decimal.Zero
	for _, p := range payments {
		totalPaid = totalPaid.Add(p.Amount)
	}

	total := b.TotalAmount()
	balance := total.Sub(totalPaid)
	isFullyPaid := !balance.IsPositive()
	hasBalance := totalPaid.IsPositive() && balance.IsPositive()

	status := PaymentStatusUnpaid
	switch {
	case isFullyPaid:
		status = PaymentStatusPaid
	case hasBalance:
		status = PaymentStatusPartial
	}

	return Financials{
		TotalAmount:     total,
		TotalPaid:       totalPaid,
		BalanceAmount:   balance,
		IsFullyPaid:     isFullyPaid,
		HasBalance:      hasBalance,
		AcceptsPayments: !isFullyPaid && b.Status != BookingStatusCancelled && b.Status != BookingStatusCheckedOut,
		PaymentStatus:   status,
	}
}

// SuggestAmount returns the default amount for a settlement type, or false when the
// caller has to supply one.
//
//	down_payment:       min(round(total * ratio), capAmount, balance)
//	balance_settlement: balance
func (f Financials) SuggestAmount(t SettlementType, ratio, capAmount decimal.Decimal) (decimal.Decimal, bool) {
	if !f.BalanceAmount.IsPositive() {
		return decimal.Zero, false
	}
	switch t {
	case SettlementDownPayment:
		half := f.TotalAmount.Mul(ratio).Round(0)
		return decimal.Min(half, capAmount, f.BalanceAmount), true
	case SettlementBalanceSettlement:
		return f.BalanceAmount, true
	}
	return decimal.Zero, false
}
