package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Request payloads for return and payment commands. Optional fields are
// pointers so that an absent value is not sent as a zero.

type InitiateReturnRequest struct {
	OrderID        string         `json:"order_id"`
	LocationID     string         `json:"location_id,omitempty"`
	Description    string         `json:"description,omitempty"`
	InternalNote   string         `json:"internal_note,omitempty"`
	NoNotification *bool          `json:"no_notification,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

type ConfirmReturnRequest struct {
	NoNotification *bool `json:"no_notification,omitempty"`
}

type UpdateReturnRequest struct {
	LocationID     string         `json:"location_id,omitempty"`
	NoNotification *bool          `json:"no_notification,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

type ReturnItemInput struct {
	ID           string `json:"id"`
	Quantity     int    `json:"quantity"`
	ReasonID     string `json:"reason_id,omitempty"`
	Description  string `json:"description,omitempty"`
	InternalNote string `json:"internal_note,omitempty"`
}

type AddReturnItems struct {
	Items []ReturnItemInput `json:"items"`
}

// UpdateItemAction changes a pending item action identified by ActionID.
// ActionID is part of the path, not the body.
type UpdateItemAction struct {
	ActionID     string `json:"-"`
	Quantity     *int   `json:"quantity,omitempty"`
	ReasonID     string `json:"reason_id,omitempty"`
	InternalNote string `json:"internal_note,omitempty"`
}

type AddReturnShipping struct {
	ShippingOptionID string           `json:"shipping_option_id"`
	CustomAmount     *decimal.Decimal `json:"custom_amount,omitempty"`
	Description      string           `json:"description,omitempty"`
	InternalNote     string           `json:"internal_note,omitempty"`
	Metadata         map[string]any   `json:"metadata,omitempty"`
}

type UpdateReturnShipping struct {
	ActionID     string           `json:"-"`
	CustomAmount *decimal.Decimal `json:"custom_amount,omitempty"`
	InternalNote string           `json:"internal_note,omitempty"`
	Metadata     map[string]any   `json:"metadata,omitempty"`
}

type InitiateReceiveReturn struct {
	Description  string         `json:"description,omitempty"`
	InternalNote string         `json:"internal_note,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

type ReceiveItemInput struct {
	ID           string `json:"id"`
	Quantity     int    `json:"quantity"`
	Description  string `json:"description,omitempty"`
	InternalNote string `json:"internal_note,omitempty"`
}

// ReceiveItems is used for both received and dismissed items.
type ReceiveItems struct {
	Items []ReceiveItemInput `json:"items"`
}

type ConfirmReceiveReturn struct {
	NoNotification *bool `json:"no_notification,omitempty"`
}

type RefundPaymentRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	RefundReasonID string          `json:"refund_reason_id,omitempty"`
	Note           string          `json:"note,omitempty"`
}

// MarshalJSON sends the amount as a JSON number; the API rejects strings.
func (r RefundPaymentRequest) MarshalJSON() ([]byte, error) {
	type plain RefundPaymentRequest
	return json.Marshal(struct {
		plain
		Amount json.Number `json:"amount"`
	}{plain(r), json.Number(r.Amount.String())})
}
