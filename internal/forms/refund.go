// Package forms validates the refund and receive-return admin forms.
package forms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/TemirB/orders-admin/internal/domain"
)

var (
	ErrAmountRequired  = errors.New("amount is required")
	ErrAmountNotNumber = errors.New("amount must be a number")
	ErrSubmitDisabled  = errors.New("submit is disabled")
	ErrFormClosed      = errors.New("form is closed")
)

// AmountOutOfRangeError reports an amount outside [Min, Max].
type AmountOutOfRangeError struct {
	Value decimal.Decimal
	Min   decimal.Decimal
	Max   decimal.Decimal
}

func (e *AmountOutOfRangeError) Error() string {
	if e.Value.LessThan(e.Min) {
		return "must be at least " + e.Min.String()
	}
	return "exceeds " + e.Max.String()
}

type State int

const (
	StateEditable State = iota
	StateInvalid
)

func (s State) String() string {
	if s == StateInvalid {
		return "invalid"
	}
	return "editable"
}

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

// Refunder submits a refund against a payment.
type Refunder interface {
	RefundPayment(ctx context.Context, paymentID string, amount decimal.Decimal) (domain.Payment, error)
}

// RefundForm gates a refund behind local amount validation. The amount starts
// at the full payment amount.
type RefundForm struct {
	mu         sync.Mutex
	payment    domain.Payment
	lang       language.Tag
	amount     *decimal.Decimal
	nan        bool
	err        error
	submitting bool
	closed     bool
	notice     *Notice
}

func NewRefundForm(payment domain.Payment, lang language.Tag) *RefundForm {
	f := &RefundForm{payment: payment, lang: lang}
	amount := payment.Amount
	f.setLocked(&amount, false)
	return f
}

// SetAmount parses user input. Empty input is a null amount; anything that
// is not a decimal number is NaN.
func (f *RefundForm) SetAmount(raw string) {
	raw = strings.TrimSpace(raw)

	f.mu.Lock()
	defer f.mu.Unlock()

	if raw == "" {
		f.setLocked(nil, false)
		return
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		f.setLocked(nil, true)
		return
	}
	f.setLocked(&d, false)
}

// SetAmountValue sets an already parsed amount; nil means null.
func (f *RefundForm) SetAmountValue(d *decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setLocked(d, false)
}

func (f *RefundForm) setLocked(d *decimal.Decimal, nan bool) {
	f.amount = d
	f.nan = nan
	f.err = validateAmount(d, nan, f.payment.Amount)
}

func validateAmount(d *decimal.Decimal, nan bool, max decimal.Decimal) error {
	switch {
	case nan:
		return ErrAmountNotNumber
	case d == nil:
		return ErrAmountRequired
	case d.IsNegative() || d.GreaterThan(max):
		return &AmountOutOfRangeError{Value: *d, Min: decimal.Zero, Max: max}
	}
	return nil
}

func (f *RefundForm) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return StateInvalid
	}
	return StateEditable
}

// Err is the current validation error, nil while editable.
func (f *RefundForm) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *RefundForm) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.canSubmitLocked()
}

func (f *RefundForm) canSubmitLocked() bool {
	return f.err == nil && !f.submitting && !f.closed
}

func (f *RefundForm) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

func (f *RefundForm) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// Notice is the last notice shown, if any.
func (f *RefundForm) Notice() (Notice, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.notice == nil {
		return Notice{}, false
	}
	return *f.notice, true
}

// Submit sends the refund. Invalid or in-flight forms return the validation
// error or ErrSubmitDisabled without calling r. On success the form closes
// with a localized notice; on failure the remote message becomes the notice
// and the form stays editable.
func (f *RefundForm) Submit(ctx context.Context, r Refunder) (domain.Payment, Notice, error) {
	f.mu.Lock()
	switch {
	case f.closed:
		f.mu.Unlock()
		return domain.Payment{}, Notice{}, ErrFormClosed
	case f.err != nil:
		err := f.err
		f.mu.Unlock()
		return domain.Payment{}, Notice{}, err
	case !f.canSubmitLocked():
		f.mu.Unlock()
		return domain.Payment{}, Notice{}, ErrSubmitDisabled
	}
	f.submitting = true
	amount := *f.amount
	f.mu.Unlock()

	payment, err := r.RefundPayment(ctx, f.payment.ID, amount)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err != nil {
		n := Notice{Kind: NoticeError, Message: err.Error()}
		f.notice = &n
		return domain.Payment{}, n, err
	}

	n := Notice{Kind: NoticeSuccess, Message: RefundedNotice(f.lang, amount, f.payment.CurrencyCode)}
	f.notice = &n
	f.closed = true
	return payment, n, nil
}

func (f *RefundForm) String() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	amount := "null"
	if f.nan {
		amount = "NaN"
	} else if f.amount != nil {
		amount = f.amount.String()
	}
	return fmt.Sprintf("refund(%s, amount=%s, max=%s)", f.payment.ID, amount, f.payment.Amount)
}
