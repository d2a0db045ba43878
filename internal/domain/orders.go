package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID           string          `json:"id"`
	DisplayID    int             `json:"display_id,omitempty"`
	Status       string          `json:"status"`
	Email        string          `json:"email,omitempty"`
	CurrencyCode string          `json:"currency_code"`
	Total        decimal.Decimal `json:"total"`
	Items        []LineItem      `json:"items,omitempty"`
	Returns      []Return        `json:"returns,omitempty"`
	Payments     []Payment       `json:"payments,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type LineItem struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderPreview is the order as it would look with pending changes applied,
// e.g. an unconfirmed return.
type OrderPreview struct {
	ID             string          `json:"id"`
	Status         string          `json:"status"`
	CurrencyCode   string          `json:"currency_code"`
	Total          decimal.Decimal `json:"total"`
	Items          []PreviewItem   `json:"items,omitempty"`
	ShippingMethod []PreviewAction `json:"shipping_methods,omitempty"`
	OrderChange    *OrderChange    `json:"order_change,omitempty"`
}

type PreviewItem struct {
	LineItem
	Actions []PreviewAction `json:"actions,omitempty"`
}

type PreviewAction struct {
	ID     string          `json:"id"`
	Action string          `json:"action"`
	Amount decimal.Decimal `json:"amount,omitempty"`
}

type OrderChange struct {
	ID         string `json:"id"`
	ChangeType string `json:"change_type"`
	Status     string `json:"status"`
	ReturnID   string `json:"return_id,omitempty"`
}

type OrderResponse struct {
	Order Order `json:"order"`
}

type OrderPreviewResponse struct {
	Order OrderPreview `json:"order"`
}

type OrderList struct {
	Orders []Order `json:"orders"`
	Count  int     `json:"count"`
	Offset int     `json:"offset"`
	Limit  int     `json:"limit"`
}
