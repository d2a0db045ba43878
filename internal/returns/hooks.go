// Package returns binds return and refund commands to cache invalidation.
//
// Each hook constructor returns a Mutation for one command against one return
// (or payment) of one order. Running it calls the commerce API once and, on
// success, invalidates the command's fixed key groups before any callbacks.
package returns

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/TemirB/orders-admin/internal/domain"
	"github.com/TemirB/orders-admin/internal/observability"
)

// Client is the subset of the commerce API the hooks call.
type Client interface {
	InitiateReturn(ctx context.Context, p domain.InitiateReturnRequest) (domain.ReturnResponse, error)
	UpdateReturn(ctx context.Context, id string, p domain.UpdateReturnRequest) (domain.ReturnResponse, error)
	ConfirmReturnRequest(ctx context.Context, id string, p domain.ConfirmReturnRequest) (domain.ReturnResponse, error)
	CancelReturnRequest(ctx context.Context, id string) (domain.ReturnResponse, error)
	AddReturnItems(ctx context.Context, id string, p domain.AddReturnItems) (domain.ReturnResponse, error)
	UpdateReturnItem(ctx context.Context, id string, p domain.UpdateItemAction) (domain.ReturnResponse, error)
	RemoveReturnItem(ctx context.Context, id, actionID string) (domain.ReturnResponse, error)
	AddReturnShipping(ctx context.Context, id string, p domain.AddReturnShipping) (domain.ReturnResponse, error)
	UpdateReturnShipping(ctx context.Context, id string, p domain.UpdateReturnShipping) (domain.ReturnResponse, error)
	DeleteReturnShipping(ctx context.Context, id, actionID string) (domain.ReturnResponse, error)
	InitiateReceive(ctx context.Context, id string, p domain.InitiateReceiveReturn) (domain.ReturnResponse, error)
	CancelReceive(ctx context.Context, id string) (domain.ReturnResponse, error)
	ReceiveItems(ctx context.Context, id string, p domain.ReceiveItems) (domain.ReturnResponse, error)
	UpdateReceiveItem(ctx context.Context, id string, p domain.UpdateItemAction) (domain.ReturnResponse, error)
	RemoveReceiveItem(ctx context.Context, id, actionID string) (domain.ReturnResponse, error)
	DismissItems(ctx context.Context, id string, p domain.ReceiveItems) (domain.ReturnResponse, error)
	UpdateDismissItem(ctx context.Context, id string, p domain.UpdateItemAction) (domain.ReturnResponse, error)
	RemoveDismissItem(ctx context.Context, id, actionID string) (domain.ReturnResponse, error)
	ConfirmReceive(ctx context.Context, id string, p domain.ConfirmReceiveReturn) (domain.ReturnResponse, error)
	RefundPayment(ctx context.Context, id string, p domain.RefundPaymentRequest) (domain.Payment, error)
}

// NoVars is the variables type of commands that take no payload.
type NoVars struct{}

type Hooks struct {
	client Client
	deps   *deps
}

func NewHooks(client Client, invalidator Invalidator, recorder Recorder, metrics observability.Metrics, logger *zap.Logger) *Hooks {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if metrics == nil {
		metrics = observability.Noop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hooks{
		client: client,
		deps: &deps{
			invalidator: invalidator,
			recorder:    recorder,
			metrics:     metrics,
			logger:      logger,
			tracer:      otel.Tracer("orders-admin/returns"),
		},
	}
}

func newMutation[V, R any](h *Hooks, cmd Command, t target, opts Options[V, R], fn func(context.Context, V) (R, error)) *Mutation[V, R] {
	return &Mutation[V, R]{command: cmd, target: t, fn: fn, opts: opts, deps: h.deps}
}

// Return request

func (h *Hooks) InitiateReturn(orderID string, opts Options[domain.InitiateReturnRequest, domain.ReturnResponse]) *Mutation[domain.InitiateReturnRequest, domain.ReturnResponse] {
	return newMutation(h, CmdInitiateReturn, target{orderID: orderID}, opts,
		func(ctx context.Context, p domain.InitiateReturnRequest) (domain.ReturnResponse, error) {
			return h.client.InitiateReturn(ctx, p)
		})
}

func (h *Hooks) ConfirmReturnRequest(id, orderID string, opts Options[domain.ConfirmReturnRequest, domain.ReturnResponse]) *Mutation[domain.ConfirmReturnRequest, domain.ReturnResponse] {
	return newMutation(h, CmdConfirmReturnRequest, target{returnID: id, orderID: orderID}, opts,
		func(ctx context.Context, p domain.ConfirmReturnRequest) (domain.ReturnResponse, error) {
			return h.client.ConfirmReturnRequest(ctx, id, p)
		})
}

func (h *Hooks) CancelReturnRequest(id, orderID string, opts Options[NoVars, domain.ReturnResponse]) *Mutation[NoVars, domain.ReturnResponse] {
	return newMutation(h, CmdCancelReturnRequest, target{returnID: id, orderID: orderID}, opts,
		func(ctx context.Context, _ NoVars) (domain.ReturnResponse, error) {
			return h.client.CancelReturnRequest(ctx, id)
		})
}

func (h *Hooks) AddReturnItems(id, orderID string, opts Options[domain.AddReturnItems, domain.ReturnResponse]) *Mutation[domain.AddReturnItems, domain.ReturnResponse] {
	return newMutation(h, CmdAddReturnItems, target{returnID: id, orderID: orderID}, opts,
		func(ctx context.Context, p domain.AddReturnItems) (domain.ReturnResponse, error) {
			return h.client.AddReturnItems(ctx, id, p)
		})
}

func (h *Hooks) UpdateReturnItem(id, orderID string, opts Options[domain.UpdateItemAction, domain.ReturnResponse]) *Mutation[domain.UpdateItemAction, domain.ReturnResponse] {
	return newMutation(h, CmdUpdateReturnItem, target{returnID: id, orderID: orderID}, opts,
		func(ctx context.Context, p domain.UpdateItemAction) (domain.ReturnResponse, error) {
			return h.client.UpdateReturnItem(ctx, id, p)
		})
}

// RemoveReturnItem takes the action id as its variables.
func (h *Hooks) RemoveReturnItem(id, orderID string, opts Options[string, domain.ReturnResponse]) *Mutation[string, domain.ReturnResponse] {
	return newMutation(h, CmdRemoveReturnItem, target{returnID: id, orderID: orderID}, opts,
		func(ctx context.Context, actionID string) (domain.ReturnResponse, error) {
			return h.client.RemoveReturnItem(ctx, id, actionID)
		})
}

func (h *Hooks) UpdateReturn(id, orderID string, opts Options[domain.UpdateReturnRequest, domain.ReturnResponse]) *Mutation[domain.UpdateReturnRequest, domain.ReturnResponse] {
	return newMutation(h, CmdUpdateReturn, target{returnID: id, orderID: orderID}, opts,
		func(ctx context.Context, p domain.UpdateReturnRequest) (domain.ReturnResponse, error) {
			return h.client.UpdateReturn(ctx, id, p)
		})
}

// Return shipping

func (h *Hooks) AddReturnShipping(id, orderID string, opts Options[domain.AddReturnShipping, domain.ReturnResponse]) *Mutation[domain.AddReturnShipping, domain.ReturnResponse] {
	return newMutation(h, CmdAddReturnShipping, target{returnID: id, orderID: orderID}, opts,
		func(ctx context.Context, p domain.AddReturnShipping) (domain.ReturnResponse, error) {
			return h.client.AddReturnShipping(ctx, id, p)
		})
}

func (h *Hooks) UpdateReturnShipping(id, orderID string, opts Options[domain.UpdateReturnShipping, domain.ReturnResponse]) *Mutation[domain.UpdateReturnShipping, domain.ReturnResponse] {
	return newMutation(h, CmdUpdateReturnShipping, target{returnID: id, orderID: orderID}, opts,
		func(ctx context.Context, p domain.UpdateReturnShipping) (domain.ReturnResponse, error) {
			return h.client.UpdateReturnShipping(ctx, id, p)
		})
}

func (h *Hooks) DeleteReturnShipping(id, orderID string, opts Options[string, domain.ReturnResponse]) *Mutation[string, domain.ReturnResponse] {
	return newMutation(h, CmdDeleteReturnShipping, target{returnID: id, orderID: orderID}, opts,
		func(ctx context.Context, actionID string) (domain.ReturnResponse, error) {
			return h.client.DeleteReturnShipping(ctx, id, actionID)
		})
}

// Receive

func (h *Hooks) InitiateReceive(id, orderID string, opts Options[domain.InitiateReceiveReturn, domain.ReturnResponse]) *Mutation[domain.InitiateReceiveReturn, domain.ReturnResponse] {
	return newMutation(h, CmdInitiateReceive, target{returnID: id, orderID: orderID}, opts,
		func(ctx context.Context, p domain.InitiateReceiveReturn) (domain.ReturnResponse, error) {
			return h.client.InitiateReceive(ctx, id, p)
		})
}

func (h *Hooks) AddReceiveItems(id, orderID string, opts Options[domain.ReceiveItems, domain.ReturnResponse]) *Mutation[domain.ReceiveItems, domain.ReturnResponse] {
	return newMutation(h, CmdAddReceiveItems, target{returnID: id, orderID: orderID}, opts,
		func(ctx context.Context, p domain.ReceiveItems) (domain.ReturnResponse, error) {
			return h.client.ReceiveItems(ctx, id, p)
		})
}

func (h *Hooks) UpdateReceiveItem(id, orderID string, opts Options[domain.UpdateItemAction, domain.ReturnResponse]) *Mutation[domain.UpdateItemAction, domain.ReturnResponse] {
	return newMutation(h, CmdUpdateReceiveItem, target{returnID: id, orderID: orderID}, opts,
		func(ctx context.Context, p domain.UpdateItemAction) (domain.ReturnResponse, error) {
			return h.client.UpdateReceiveItem(ctx, id, p)
		})
}

func (h *Hooks) RemoveReceiveItem(id, orderID string, opts Options[string, domain.ReturnResponse]) *Mutation[string, domain.ReturnResponse] {
	return newMutation(h, CmdRemoveReceiveItem, target{returnID: id, orderID: orderID}, opts,
		func(ctx context.Context, actionID string) (domain.ReturnResponse, error) {
			return h.client.RemoveReceiveItem(ctx, id, actionID)
		})
}

func (h *Hooks) AddDismissItems(id, orderID string, opts Options[domain.ReceiveItems, domain.ReturnResponse]) *Mutation[domain.ReceiveItems, domain.ReturnResponse] {
	return newMutation(h, CmdAddDismissItems, target{returnID: id, orderID: orderID}, opts,
		func(ctx context.Context, p domain.ReceiveItems) (domain.ReturnResponse, error) {
			return h.client.DismissItems(ctx, id, p)
		})
}

func (h *Hooks) UpdateDismissItem(id, orderID string, opts Options[domain.UpdateItemAction, domain.ReturnResponse]) *Mutation[domain.UpdateItemAction, domain.ReturnResponse] {
	return newMutation(h, CmdUpdateDismissItem, target{returnID: id, orderID: orderID}, opts,
		func(ctx context.Context, p domain.UpdateItemAction) (domain.ReturnResponse, error) {
			return h.client.UpdateDismissItem(ctx, id, p)
		})
}

func (h *Hooks) RemoveDismissItem(id, orderID string, opts Options[string, domain.ReturnResponse]) *Mutation[string, domain.ReturnResponse] {
	return newMutation(h, CmdRemoveDismissItem, target{returnID: id, orderID: orderID}, opts,
		func(ctx context.Context, actionID string) (domain.ReturnResponse, error) {
			return h.client.RemoveDismissItem(ctx, id, actionID)
		})
}

func (h *Hooks) ConfirmReceive(id, orderID string, opts Options[domain.ConfirmReceiveReturn, domain.ReturnResponse]) *Mutation[domain.ConfirmReceiveReturn, domain.ReturnResponse] {
	return newMutation(h, CmdConfirmReceive, target{returnID: id, orderID: orderID}, opts,
		func(ctx context.Context, p domain.ConfirmReceiveReturn) (domain.ReturnResponse, error) {
			return h.client.ConfirmReceive(ctx, id, p)
		})
}

func (h *Hooks) CancelReceive(id, orderID string, opts Options[NoVars, domain.ReturnResponse]) *Mutation[NoVars, domain.ReturnResponse] {
	return newMutation(h, CmdCancelReceive, target{returnID: id, orderID: orderID}, opts,
		func(ctx context.Context, _ NoVars) (domain.ReturnResponse, error) {
			return h.client.CancelReceive(ctx, id)
		})
}

// Refunds

func (h *Hooks) RefundPayment(paymentID, orderID string, opts Options[domain.RefundPaymentRequest, domain.Payment]) *Mutation[domain.RefundPaymentRequest, domain.Payment] {
	return newMutation(h, CmdRefundPayment, target{paymentID: paymentID, orderID: orderID}, opts,
		func(ctx context.Context, p domain.RefundPaymentRequest) (domain.Payment, error) {
			return h.client.RefundPayment(ctx, paymentID, p)
		})
}

// Refunder adapts a refund mutation to the refund form.
type Refunder struct {
	Mutation *Mutation[domain.RefundPaymentRequest, domain.Payment]
	ReasonID string
	Note     string
}

func (r Refunder) RefundPayment(ctx context.Context, paymentID string, amount decimal.Decimal) (domain.Payment, error) {
	if paymentID != r.Mutation.target.paymentID {
		return domain.Payment{}, fmt.Errorf("refund bound to payment %s, got %s", r.Mutation.target.paymentID, paymentID)
	}
	return r.Mutation.Mutate(ctx, domain.RefundPaymentRequest{
		Amount:         amount,
		RefundReasonID: r.ReasonID,
		Note:           r.Note,
	})
}
