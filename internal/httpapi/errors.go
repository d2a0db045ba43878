package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/TemirB/orders-admin/internal/commerce"
	"github.com/TemirB/orders-admin/internal/forms"
)

var errUnsupportedMedia = errors.New("Content-Type must be application/json")

type badRequestError struct{ msg string }

func (e *badRequestError) Error() string { return e.msg }

// errorBody mirrors the commerce API error shape so the dashboard can show
// either one the same way.
type errorBody struct {
	Type    string   `json:"type"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// writeError maps err to a status. Upstream client errors pass through with
// their status and message. Upstream server and transport failures are 502
// and an open circuit is 503. Local validation failures are 422.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	writeJSON(w, status, body)
}

func classify(err error) (int, errorBody) {
	var (
		apiErr *commerce.APIError
		badReq *badRequestError
	)
	switch {
	case errors.Is(err, errUnsupportedMedia):
		return http.StatusUnsupportedMediaType, errorBody{Type: "invalid_request", Message: err.Error()}
	case errors.As(err, &badReq):
		return http.StatusBadRequest, errorBody{Type: "invalid_request", Message: badReq.msg}
	case forms.IsInvalid(err):
		return http.StatusUnprocessableEntity, errorBody{Type: "invalid_data", Message: err.Error(), Errors: splitJoined(err)}
	case errors.As(err, &apiErr) && apiErr.ClientError():
		return apiErr.Status, errorBody{Type: apiErr.Type, Message: apiErr.Message}
	case errors.As(err, &apiErr):
		return http.StatusBadGateway, errorBody{Type: "upstream_error", Message: apiErr.Message}
	case errors.Is(err, commerce.ErrUnavailable):
		return http.StatusServiceUnavailable, errorBody{Type: "unavailable", Message: "commerce api unavailable, retry later"}
	case errors.Is(err, commerce.ErrTransport):
		return http.StatusBadGateway, errorBody{Type: "upstream_error", Message: "commerce api unreachable"}
	}
	return http.StatusInternalServerError, errorBody{Type: "unknown_error", Message: "internal error"}
}

// splitJoined lists the parts of an errors.Join result.
func splitJoined(err error) []string {
	j, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return nil
	}
	var out []string
	for _, e := range j.Unwrap() {
		out = append(out, e.Error())
	}
	return out
}
