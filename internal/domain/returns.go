package domain

import "time"

// Return statuses as reported by the commerce engine. The lifecycle is
// enforced remotely; they are only used for display and filtering here.
const (
	ReturnRequested         = "requested"
	ReturnReceived          = "received"
	ReturnPartiallyReceived = "partially_received"
	ReturnCanceled          = "canceled"
)

type Return struct {
	ID             string         `json:"id"`
	OrderID        string         `json:"order_id"`
	Status         string         `json:"status"`
	LocationID     string         `json:"location_id,omitempty"`
	DisplayID      int            `json:"display_id,omitempty"`
	NoNotification bool           `json:"no_notification,omitempty"`
	Items          []ReturnItem   `json:"items,omitempty"`
	RequestedAt    *time.Time     `json:"requested_at,omitempty"`
	ReceivedAt     *time.Time     `json:"received_at,omitempty"`
	CanceledAt     *time.Time     `json:"canceled_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

type ReturnItem struct {
	ID                 string `json:"id"`
	ItemID             string `json:"item_id"`
	Quantity           int    `json:"quantity"`
	ReceivedQuantity   int    `json:"received_quantity"`
	DamagedQuantity    int    `json:"damaged_quantity"`
	WrittenOffQuantity int    `json:"written_off_quantity,omitempty"`
	ReasonID           string `json:"reason_id,omitempty"`
	Note               string `json:"note,omitempty"`
}

// ReturnResponse is the envelope returned by every return command.
type ReturnResponse struct {
	Return       Return        `json:"return"`
	OrderPreview *OrderPreview `json:"order_preview,omitempty"`
}

type ReturnList struct {
	Returns []Return `json:"returns"`
	Count   int      `json:"count"`
	Offset  int      `json:"offset"`
	Limit   int      `json:"limit"`
}
