package forms

import (
	"errors"
	"fmt"
	"math"

	"github.com/TemirB/orders-admin/internal/domain"
)

// ReceiveReturnItem is one row of the receive form. Quantities are nullable;
// null means the row was left empty.
type ReceiveReturnItem struct {
	ItemID             string   `json:"item_id"`
	Quantity           *float64 `json:"quantity"`
	WrittenOffQuantity *float64 `json:"written_off_quantity"`
}

type ReceiveReturnForm struct {
	Items            []ReceiveReturnItem `json:"items"`
	SendNotification *bool               `json:"send_notification,omitempty"`
}

// ItemError points at one invalid field of one row.
type ItemError struct {
	Index  int
	Field  string
	Reason string
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("items[%d].%s: %s", e.Index, e.Field, e.Reason)
}

// maxQuantity bounds a single quantity field.
const maxQuantity = math.MaxInt32

// Validate checks the form shape. Every problem is reported, joined.
func (f ReceiveReturnForm) Validate() error {
	var errs []error
	for i, it := range f.Items {
		if it.ItemID == "" {
			errs = append(errs, &ItemError{Index: i, Field: "item_id", Reason: "required"})
		}
		if err := checkQuantity(it.Quantity); err != "" {
			errs = append(errs, &ItemError{Index: i, Field: "quantity", Reason: err})
		}
		if err := checkQuantity(it.WrittenOffQuantity); err != "" {
			errs = append(errs, &ItemError{Index: i, Field: "written_off_quantity", Reason: err})
		}
	}
	return errors.Join(errs...)
}

func checkQuantity(q *float64) string {
	switch {
	case q == nil:
		return ""
	case math.IsNaN(*q) || math.IsInf(*q, 0):
		return "must be a number"
	case *q < 0:
		return "must not be negative"
	case *q > maxQuantity:
		return "is too large"
	case *q != math.Trunc(*q):
		return "must be a whole number"
	}
	return ""
}

// CheckAgainst verifies that every row names an item of r and that received
// plus written off quantities stay within the returned quantity. Rows naming
// the same item count against one shared limit.
func (f ReceiveReturnForm) CheckAgainst(r domain.Return) error {
	requested := make(map[string]int, len(r.Items))
	for _, it := range r.Items {
		requested[it.ItemID] += it.Quantity
	}

	used := make(map[string]float64, len(f.Items))
	var errs []error
	for i, it := range f.Items {
		max, ok := requested[it.ItemID]
		if !ok {
			errs = append(errs, &ItemError{Index: i, Field: "item_id", Reason: "not part of return " + r.ID})
			continue
		}
		used[it.ItemID] += value(it.Quantity) + value(it.WrittenOffQuantity)
		if total := used[it.ItemID]; total > float64(max) {
			errs = append(errs, &ItemError{
				Index:  i,
				Field:  "quantity",
				Reason: fmt.Sprintf("received and written off %.0f exceed returned %d", total, max),
			})
		}
	}
	return errors.Join(errs...)
}

func value(q *float64) float64 {
	if q == nil || math.IsNaN(*q) {
		return 0
	}
	return *q
}

func quantity(q *float64) int {
	if q == nil {
		return 0
	}
	return int(*q)
}

// Received lists rows with a positive quantity.
func (f ReceiveReturnForm) Received() domain.ReceiveItems {
	out := domain.ReceiveItems{}
	for _, it := range f.Items {
		if n := quantity(it.Quantity); n > 0 {
			out.Items = append(out.Items, domain.ReceiveItemInput{ID: it.ItemID, Quantity: n})
		}
	}
	return out
}

// Dismissed lists rows with a positive written off quantity.
func (f ReceiveReturnForm) Dismissed() domain.ReceiveItems {
	out := domain.ReceiveItems{}
	for _, it := range f.Items {
		if n := quantity(it.WrittenOffQuantity); n > 0 {
			out.Items = append(out.Items, domain.ReceiveItemInput{ID: it.ItemID, Quantity: n})
		}
	}
	return out
}

// NoNotification is the inverse of send_notification, which defaults to off.
func (f ReceiveReturnForm) NoNotification() bool {
	return f.SendNotification == nil || !*f.SendNotification
}
