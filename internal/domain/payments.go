package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID             string          `json:"id"`
	OrderID        string          `json:"order_id,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	CurrencyCode   string          `json:"currency_code"`
	ProviderID     string          `json:"provider_id,omitempty"`
	CapturedAmount decimal.Decimal `json:"captured_amount,omitempty"`
	RefundedAmount decimal.Decimal `json:"refunded_amount,omitempty"`
	Refunds        []Refund        `json:"refunds,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

type Refund struct {
	ID             string          `json:"id"`
	Amount         decimal.Decimal `json:"amount"`
	RefundReasonID string          `json:"refund_reason_id,omitempty"`
	Note           string          `json:"note,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

type PaymentResponse struct {
	Payment Payment `json:"payment"`
}
