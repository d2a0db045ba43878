// Package httpapi serves the admin API: cached reads, return and refund
// commands, and the receive and refund workflows.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/TemirB/orders-admin/internal/application/service"
	"github.com/TemirB/orders-admin/internal/config"
	"github.com/TemirB/orders-admin/internal/domain"
	"github.com/TemirB/orders-admin/internal/forms"
	"github.com/TemirB/orders-admin/internal/observability"
	"github.com/TemirB/orders-admin/internal/pkg/circuit"
	"github.com/TemirB/orders-admin/internal/returns"
)

//go:generate mockgen -source httpapi.go -destination=httpapi_mock_test.go -package=httpapi

type Service interface {
	OrderPreview(ctx context.Context, orderID string) (domain.OrderPreview, service.LookupStats, error)
	Order(ctx context.Context, id string, query url.Values) (domain.Order, service.LookupStats, error)
	Orders(ctx context.Context, query url.Values) (domain.OrderList, service.LookupStats, error)
	Return(ctx context.Context, id string, query url.Values) (domain.Return, service.LookupStats, error)
	Returns(ctx context.Context, query url.Values) (domain.ReturnList, service.LookupStats, error)
	Payment(ctx context.Context, id string) (domain.Payment, service.LookupStats, error)
	OrderIDForReturn(ctx context.Context, returnID string) (string, error)
	SubmitReceive(ctx context.Context, returnID, orderID string, form forms.ReceiveReturnForm) (domain.ReturnResponse, error)
	Refund(ctx context.Context, paymentID string, in service.RefundInput, lang language.Tag) (service.RefundResult, error)
}

type Journal interface {
	Recent(ctx context.Context, limit int) ([]domain.JournalEntry, error)
}

type BreakerStats interface {
	Stats() circuit.Stats
}

// Options carries the optional collaborators. Nil fields disable the
// endpoints that need them.
type Options struct {
	Journal  Journal
	Breaker  BreakerStats
	Gatherer prometheus.Gatherer
	CORS     config.CORS

	// CookieSecret signs the connect.sid session cookie. Empty means the
	// session probe reports presence only.
	CookieSecret string
}

type Server struct {
	service Service
	hooks   *returns.Hooks
	opts    Options
	handler http.Handler
	logger  *zap.Logger
	metrics observability.Metrics
	started time.Time
}

func New(svc Service, hooks *returns.Hooks, opts Options, logger *zap.Logger, metrics observability.Metrics) *Server {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	s := &Server{
		service: svc,
		hooks:   hooks,
		opts:    opts,
		logger:  logger,
		metrics: metrics,
		started: time.Now(),
	}
	s.handler = s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.handler }

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeLookup(w http.ResponseWriter, st service.LookupStats) {
	observability.WriteLookup(w, string(st.Source), st.CacheMs, st.RemoteMs)
}

// readJSON returns the raw JSON body, or nil when the body is empty.
func readJSON(r *http.Request) ([]byte, error) {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		return nil, errUnsupportedMedia
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		return nil, &badRequestError{msg: fmt.Sprintf("read body: %v", err)}
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}
	if !json.Valid(data) {
		return nil, &badRequestError{msg: "bad json"}
	}
	return data, nil
}

// decodeJSON unmarshals a JSON body into v. An empty body leaves v untouched.
func decodeJSON(r *http.Request, v any) error {
	data, err := readJSON(r)
	if err != nil || data == nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &badRequestError{msg: fmt.Sprintf("bad json: %v", err)}
	}
	return nil
}
