package commerce

import (
	"context"
	"net/http"
	"net/url"

	"github.com/TemirB/orders-admin/internal/domain"
)

func returnPath(id string, rest ...string) string {
	p := "/admin/returns/" + seg(id)
	for _, r := range rest {
		p += "/" + r
	}
	return p
}

func (c *Client) command(ctx context.Context, method, path string, body any) (domain.ReturnResponse, error) {
	var out domain.ReturnResponse
	err := c.do(ctx, method, path, nil, body, &out)
	return out, err
}

func (c *Client) ListReturns(ctx context.Context, query url.Values) (domain.ReturnList, error) {
	var out domain.ReturnList
	err := c.do(ctx, http.MethodGet, "/admin/returns", query, nil, &out)
	return out, err
}

func (c *Client) GetReturn(ctx context.Context, id string, query url.Values) (domain.Return, error) {
	var out struct {
		Return domain.Return `json:"return"`
	}
	err := c.do(ctx, http.MethodGet, returnPath(id), query, nil, &out)
	return out.Return, err
}

func (c *Client) InitiateReturn(ctx context.Context, p domain.InitiateReturnRequest) (domain.ReturnResponse, error) {
	return c.command(ctx, http.MethodPost, "/admin/returns", p)
}

func (c *Client) UpdateReturn(ctx context.Context, id string, p domain.UpdateReturnRequest) (domain.ReturnResponse, error) {
	return c.command(ctx, http.MethodPost, returnPath(id), p)
}

func (c *Client) ConfirmReturnRequest(ctx context.Context, id string, p domain.ConfirmReturnRequest) (domain.ReturnResponse, error) {
	return c.command(ctx, http.MethodPost, returnPath(id, "request"), p)
}

func (c *Client) CancelReturnRequest(ctx context.Context, id string) (domain.ReturnResponse, error) {
	return c.command(ctx, http.MethodDelete, returnPath(id, "request"), nil)
}

func (c *Client) AddReturnItems(ctx context.Context, id string, p domain.AddReturnItems) (domain.ReturnResponse, error) {
	return c.command(ctx, http.MethodPost, returnPath(id, "request-items"), p)
}

func (c *Client) UpdateReturnItem(ctx context.Context, id string, p domain.UpdateItemAction) (domain.ReturnResponse, error) {
	return c.command(ctx, http.MethodPost, returnPath(id, "request-items", seg(p.ActionID)), p)
}

func (c *Client) RemoveReturnItem(ctx context.Context, id, actionID string) (domain.ReturnResponse, error) {
	return c.command(ctx, http.MethodDelete, returnPath(id, "request-items", seg(actionID)), nil)
}

func (c *Client) AddReturnShipping(ctx context.Context, id string, p domain.AddReturnShipping) (domain.ReturnResponse, error) {
	return c.command(ctx, http.MethodPost, returnPath(id, "shipping-method"), p)
}

func (c *Client) UpdateReturnShipping(ctx context.Context, id string, p domain.UpdateReturnShipping) (domain.ReturnResponse, error) {
	return c.command(ctx, http.MethodPost, returnPath(id, "shipping-method", seg(p.ActionID)), p)
}

func (c *Client) DeleteReturnShipping(ctx context.Context, id, actionID string) (domain.ReturnResponse, error) {
	return c.command(ctx, http.MethodDelete, returnPath(id, "shipping-method", seg(actionID)), nil)
}

func (c *Client) InitiateReceive(ctx context.Context, id string, p domain.InitiateReceiveReturn) (domain.ReturnResponse, error) {
	return c.command(ctx, http.MethodPost, returnPath(id, "receive"), p)
}

func (c *Client) CancelReceive(ctx context.Context, id string) (domain.ReturnResponse, error) {
	return c.command(ctx, http.MethodDelete, returnPath(id, "receive"), nil)
}

func (c *Client) ReceiveItems(ctx context.Context, id string, p domain.ReceiveItems) (domain.ReturnResponse, error) {
	return c.command(ctx, http.MethodPost, returnPath(id, "receive-items"), p)
}

func (c *Client) UpdateReceiveItem(ctx context.Context, id string, p domain.UpdateItemAction) (domain.ReturnResponse, error) {
	return c.command(ctx, http.MethodPost, returnPath(id, "receive-items", seg(p.ActionID)), p)
}

func (c *Client) RemoveReceiveItem(ctx context.Context, id, actionID string) (domain.ReturnResponse, error) {
	return c.command(ctx, http.MethodDelete, returnPath(id, "receive-items", seg(actionID)), nil)
}

func (c *Client) DismissItems(ctx context.Context, id string, p domain.ReceiveItems) (domain.ReturnResponse, error) {
	return c.command(ctx, http.MethodPost, returnPath(id, "dismiss-items"), p)
}

func (c *Client) UpdateDismissItem(ctx context.Context, id string, p domain.UpdateItemAction) (domain.ReturnResponse, error) {
	return c.command(ctx, http.MethodPost, returnPath(id, "dismiss-items", seg(p.ActionID)), p)
}

func (c *Client) RemoveDismissItem(ctx context.Context, id, actionID string) (domain.ReturnResponse, error) {
	return c.command(ctx, http.MethodDelete, returnPath(id, "dismiss-items", seg(actionID)), nil)
}

func (c *Client) ConfirmReceive(ctx context.Context, id string, p domain.ConfirmReceiveReturn) (domain.ReturnResponse, error) {
	return c.command(ctx, http.MethodPost, returnPath(id, "receive", "confirm"), p)
}
