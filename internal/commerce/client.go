// Package commerce is a JSON client for the commerce engine admin API.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/TemirB/orders-admin/internal/config"
)

//go:generate mockgen -source client.go -destination=client_mock_test.go -package=commerce

var (
	ErrUnavailable = errors.New("commerce api unavailable")
	// ErrTransport wraps failures to reach the API or to read its answer.
	ErrTransport = errors.New("commerce api transport")
)

// APIError is a non-2xx answer from the commerce API. Error returns the
// remote message unchanged so it can be shown to the operator as is.
type APIError struct {
	Status  int    `json:"-"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e *APIError) Error() string { return e.Message }

// ClientError reports a 4xx answer, which retrying cannot fix.
func (e *APIError) ClientError() bool { return e.Status >= 400 && e.Status < 500 }

type breaker interface {
	Allow() error
	Success()
	Failure()
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
	breaker breaker
	logger  *zap.Logger
	tracer  trace.Tracer
}

func New(cfg config.Commerce, brk breaker, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    &http.Client{Timeout: cfg.Timeout},
		breaker: brk,
		logger:  logger,
		tracer:  otel.Tracer("orders-admin/commerce"),
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	ctx, span := c.tracer.Start(ctx, method+" "+path, trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.path", path),
		))
	defer span.End()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	// Allow only once the request is ready: every admitted call must report
	// Success or Failure, or a half-open trial slot is never released.
	if err := c.breaker.Allow(); err != nil {
		span.SetStatus(codes.Error, "circuit open")
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.breaker.Failure()
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		c.logger.Warn("commerce request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("%s %s: %w: %w", method, path, ErrTransport, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode >= 500 {
		c.breaker.Failure()
	} else {
		c.breaker.Success()
	}

	if resp.StatusCode >= 300 {
		apiErr := decodeError(resp)
		span.SetStatus(codes.Error, apiErr.Message)
		c.logger.Info("commerce request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", apiErr.Status),
			zap.String("type", apiErr.Type),
			zap.String("message", apiErr.Message),
		)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s %s: %w: %w", method, path, ErrTransport, err)
	}
	return nil
}

func decodeError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if len(data) > 0 {
		_ = json.Unmarshal(data, apiErr)
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

func seg(s string) string { return url.PathEscape(s) }
