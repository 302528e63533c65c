package request

type SettlePaymentRequest struct {
	// optional; empty takes the suggested amount for the settlement type
	Amount               string  `json:"amount,omitempty" validate:"omitempty,money"`
	Method               string  `json:"method" validate:"max=30"`
	SettlementType       string  `json:"settlement_type" validate:"required,oneof=down_payment partial_payment balance_settlement"`
	TransactionReference *string `json:"transaction_reference,omitempty" validate:"omitempty,max=100"`
	IdempotencyKey       *string `json:"idempotency_key,omitempty" validate:"omitempty,min=8,max=100"`
}
