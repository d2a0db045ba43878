package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/TemirB/orders-admin/internal/domain"
	"github.com/TemirB/orders-admin/internal/forms"
	"github.com/TemirB/orders-admin/internal/returns"
)

// SubmitReceive validates form against the return and then receives, writes
// off and confirms in that order. Each step runs through its hook. The first
// failing step stops the workflow.
func (s *Service) SubmitReceive(ctx context.Context, returnID, orderID string, form forms.ReceiveReturnForm) (domain.ReturnResponse, error) {
	if err := form.Validate(); err != nil {
		return domain.ReturnResponse{}, err
	}

	ret, _, err := s.Return(ctx, returnID, nil)
	if err != nil {
		return domain.ReturnResponse{}, err
	}
	if err := form.CheckAgainst(ret); err != nil {
		return domain.ReturnResponse{}, err
	}
	if orderID == "" {
		orderID = ret.OrderID
	}

	noOpts := returns.Options[domain.ReceiveItems, domain.ReturnResponse]{}

	if items := form.Received(); len(items.Items) > 0 {
		if _, err := s.hooks.AddReceiveItems(returnID, orderID, noOpts).Mutate(ctx, items); err != nil {
			return domain.ReturnResponse{}, fmt.Errorf("receive items: %w", err)
		}
	}
	if items := form.Dismissed(); len(items.Items) > 0 {
		if _, err := s.hooks.AddDismissItems(returnID, orderID, noOpts).Mutate(ctx, items); err != nil {
			return domain.ReturnResponse{}, fmt.Errorf("dismiss items: %w", err)
		}
	}

	noNotification := form.NoNotification()
	resp, err := s.hooks.ConfirmReceive(returnID, orderID, returns.Options[domain.ConfirmReceiveReturn, domain.ReturnResponse]{}).
		Mutate(ctx, domain.ConfirmReceiveReturn{NoNotification: &noNotification})
	if err != nil {
		return domain.ReturnResponse{}, fmt.Errorf("confirm receive: %w", err)
	}

	s.logger.Info("Return received",
		zap.String("return_id", returnID),
		zap.String("order_id", orderID),
		zap.Int("items", len(form.Items)),
		zap.Bool("no_notification", noNotification),
	)
	return resp, nil
}

// RefundInput is a refund request as entered by the operator. A nil Amount
// keeps the form default, the full payment amount.
type RefundInput struct {
	Amount   *string
	ReasonID string
	Note     string
	OrderID  string
}

type RefundResult struct {
	Payment domain.Payment `json:"payment"`
	Notice  forms.Notice   `json:"notice"`
}

// Refund loads the payment, runs the amount through a refund form and, when
// the form accepts it, submits the refund through the refund hook.
func (s *Service) Refund(ctx context.Context, paymentID string, in RefundInput, lang language.Tag) (RefundResult, error) {
	payment, _, err := s.Payment(ctx, paymentID)
	if err != nil {
		return RefundResult{}, err
	}

	form := forms.NewRefundForm(payment, lang)
	if in.Amount != nil {
		form.SetAmount(*in.Amount)
	}
	if err := form.Err(); err != nil {
		return RefundResult{}, err
	}

	orderID := in.OrderID
	if orderID == "" {
		orderID = payment.OrderID
	}
	refunder := returns.Refunder{
		Mutation: s.hooks.RefundPayment(paymentID, orderID, returns.Options[domain.RefundPaymentRequest, domain.Payment]{}),
		ReasonID: in.ReasonID,
		Note:     in.Note,
	}

	updated, notice, err := form.Submit(ctx, refunder)
	if err != nil {
		return RefundResult{Notice: notice}, err
	}
	return RefundResult{Payment: updated, Notice: notice}, nil
}
