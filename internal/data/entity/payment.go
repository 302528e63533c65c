package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodGCash        PaymentMethod = "gcash"
	PaymentMethodMaya         PaymentMethod = "maya"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCheck        PaymentMethod = "check"
)

// PaymentMethods lists the accepted methods in display order.
var PaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodCard,
	PaymentMethodGCash,
	PaymentMethodMaya,
	PaymentMethodBankTransfer,
	PaymentMethodCheck,
}

func (m PaymentMethod) IsValid() bool {
	for _, pm := range PaymentMethods {
		if pm == m {
			return true
		}
	}
	return false
}

// SettlementType is the declared intent of a payment. It only drives the suggested
// default amount, never the ledger math.
type SettlementType string

const (
	SettlementDownPayment       SettlementType = "down_payment"
	SettlementPartialPayment    SettlementType = "partial_payment"
	SettlementBalanceSettlement SettlementType = "balance_settlement"
)

func (t SettlementType) IsValid() bool {
	switch t {
	case SettlementDownPayment, SettlementPartialPayment, SettlementBalanceSettlement:
		return true
	}
	return false
}

// Payment is a ledger entry. Rows are appended and never updated or deleted.
type Payment struct {
	BaseSimple
	BookingID            uuid.UUID       `db:"booking_id"`
	Amount               decimal.Decimal `db:"amount"`
	Method               PaymentMethod   `db:"method"`
	SettlementType       SettlementType  `db:"settlement_type"`
	TransactionReference *string         `db:"transaction_reference"`
	ReceiptNumber        string          `db:"receipt_number"`
	IdempotencyKey       *string         `db:"idempotency_key"`
	ReceivedBy           *uuid.UUID      `db:"received_by"`
}
