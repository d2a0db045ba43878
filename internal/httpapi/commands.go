package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/TemirB/orders-admin/internal/application/service"
	"github.com/TemirB/orders-admin/internal/domain"
	"github.com/TemirB/orders-admin/internal/forms"
	"github.com/TemirB/orders-admin/internal/returns"
)

type hookFunc[V any] func(h *returns.Hooks, id, orderID string, opts returns.Options[V, domain.ReturnResponse]) *returns.Mutation[V, domain.ReturnResponse]

// command serves one return command. The body decodes into the command
// variables unless they are a bare action id, bind then fills the fields
// that live in the path.
func command[V any](s *Server, hook hookFunc[V], bind func(r *http.Request, vars *V)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		returnID := chi.URLParam(r, "id")

		body, err := readJSON(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		var vars V
		if _, bare := any(&vars).(*string); !bare && body != nil {
			if err := json.Unmarshal(body, &vars); err != nil {
				s.writeError(w, r, &badRequestError{msg: fmt.Sprintf("bad json: %v", err)})
				return
			}
		}
		if bind != nil {
			bind(r, &vars)
		}

		orderID, err := s.orderID(r, returnID, body)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		resp, err := hook(s.hooks, returnID, orderID, returns.Options[V, domain.ReturnResponse]{}).Mutate(r.Context(), vars)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func bindAction(r *http.Request, v *string) { *v = chi.URLParam(r, "action") }

func bindItemAction(r *http.Request, v *domain.UpdateItemAction) {
	v.ActionID = chi.URLParam(r, "action")
}

func bindShippingAction(r *http.Request, v *domain.UpdateReturnShipping) {
	v.ActionID = chi.URLParam(r, "action")
}

// orderID finds the order a return belongs to: the order_id query
// parameter, then an order_id body field, then the return itself.
func (s *Server) orderID(r *http.Request, returnID string, body []byte) (string, error) {
	if id := strings.TrimSpace(r.URL.Query().Get("order_id")); id != "" {
		return id, nil
	}
	if body != nil {
		var withOrder struct {
			OrderID string `json:"order_id"`
		}
		if json.Unmarshal(body, &withOrder) == nil && withOrder.OrderID != "" {
			return withOrder.OrderID, nil
		}
	}
	return s.service.OrderIDForReturn(r.Context(), returnID)
}

func (s *Server) handleInitiateReturn(w http.ResponseWriter, r *http.Request) {
	var req domain.InitiateReturnRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if strings.TrimSpace(req.OrderID) == "" {
		s.writeError(w, r, &badRequestError{msg: "order_id is required"})
		return
	}

	resp, err := s.hooks.InitiateReturn(req.OrderID, returns.Options[domain.InitiateReturnRequest, domain.ReturnResponse]{}).
		Mutate(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmitReceive(w http.ResponseWriter, r *http.Request) {
	var form forms.ReceiveReturnForm
	if err := decodeJSON(r, &form); err != nil {
		s.writeError(w, r, err)
		return
	}

	resp, err := s.service.SubmitReceive(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("order_id"), form)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type refundBody struct {
	Amount   json.RawMessage `json:"amount"`
	ReasonID string          `json:"refund_reason_id"`
	Note     string          `json:"note"`
	OrderID  string          `json:"order_id"`
}

func (s *Server) handleRefund(w http.ResponseWriter, r *http.Request) {
	var body refundBody
	if err := decodeJSON(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	amount, err := rawAmount(body.Amount)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	in := service.RefundInput{
		Amount:   amount,
		ReasonID: body.ReasonID,
		Note:     body.Note,
		OrderID:  body.OrderID,
	}
	if id := r.URL.Query().Get("order_id"); id != "" {
		in.OrderID = id
	}

	lang := forms.MatchLanguage(r.Header.Get("Accept-Language"))
	res, err := s.service.Refund(r.Context(), chi.URLParam(r, "id"), in, lang)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// rawAmount accepts the amount as a JSON number or as the text typed into
// the form. Missing and null keep the form default.
func rawAmount(raw json.RawMessage) (*string, error) {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return nil, nil
	}
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, &badRequestError{msg: fmt.Sprintf("amount: %v", err)}
		}
		return &s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, &badRequestError{msg: "amount must be a number or a string"}
	}
	s := n.String()
	return &s, nil
}
