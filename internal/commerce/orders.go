package commerce

import (
	"context"
	"net/http"
	"net/url"

	"github.com/TemirB/orders-admin/internal/domain"
)

func (c *Client) ListOrders(ctx context.Context, query url.Values) (domain.OrderList, error) {
	var out domain.OrderList
	err := c.do(ctx, http.MethodGet, "/admin/orders", query, nil, &out)
	return out, err
}

func (c *Client) GetOrder(ctx context.Context, id string, query url.Values) (domain.Order, error) {
	var out domain.OrderResponse
	err := c.do(ctx, http.MethodGet, "/admin/orders/"+seg(id), query, nil, &out)
	return out.Order, err
}

func (c *Client) GetOrderPreview(ctx context.Context, id string) (domain.OrderPreview, error) {
	var out domain.OrderPreviewResponse
	err := c.do(ctx, http.MethodGet, "/admin/orders/"+seg(id)+"/preview", nil, nil, &out)
	return out.Order, err
}

func (c *Client) GetPayment(ctx context.Context, id string) (domain.Payment, error) {
	var out domain.PaymentResponse
	err := c.do(ctx, http.MethodGet, "/admin/payments/"+seg(id), nil, nil, &out)
	return out.Payment, err
}

func (c *Client) RefundPayment(ctx context.Context, id string, p domain.RefundPaymentRequest) (domain.Payment, error) {
	var out domain.PaymentResponse
	err := c.do(ctx, http.MethodPost, "/admin/payments/"+seg(id)+"/refund", nil, p, &out)
	return out.Payment, err
}
