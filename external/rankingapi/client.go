package rankingapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/riskibarqy/football-ranking/internal/domain/page"
	"github.com/riskibarqy/football-ranking/internal/platform/id"
	"github.com/riskibarqy/football-ranking/internal/platform/logging"
	"github.com/riskibarqy/football-ranking/internal/platform/resilience"
	"github.com/riskibarqy/football-ranking/internal/usecase"
)

const (
	DefaultBaseURL  = "http://localhost:5000/api"
	defaultTimeout  = 30 * time.Second
	maxResponseSize = 4 << 20
)

var tracer = otel.Tracer("football-ranking/external/rankingapi")

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	// Timeout overrides the fixed request timeout. Meant for tests.
	Timeout time.Duration
	// RateLimit caps outgoing requests per second. Zero disables it.
	RateLimit      float64
	RateBurst      int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	// RequestIDs tags every request with an id header. Defaults to random ids.
	RequestIDs id.Generator
}

// Client talks to the ranking REST service. It never retries, and every call
// issues its own request on its own context.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	logger         *logging.Logger
	limiter        *rate.Limiter
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	requestIDs     id.Generator
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = timeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	requestIDs := cfg.RequestIDs
	if requestIDs == nil {
		requestIDs = id.NewRandomGenerator()
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)
	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		logger:         logger.Named("rankingapi"),
		limiter:        limiter,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
		requestIDs:     requestIDs,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// envelope is the service's response wrapper.
type envelope[T any] struct {
	Success            *bool               `json:"success,omitempty"`
	Message            string              `json:"message,omitempty"`
	Data               T                   `json:"data"`
	Pagination         *paginationEnvelope `json:"pagination,omitempty"`
	ConfederationStats sonicRaw            `json:"confederation_stats,omitempty"`
}

type paginationEnvelope struct {
	CurrentPage  int `json:"currentPage"`
	ItemsPerPage int `json:"itemsPerPage"`
	TotalItems   int `json:"totalItems"`
	TotalPages   int `json:"totalPages"`
}

// sonicRaw keeps a field undecoded until the caller knows its shape.
type sonicRaw []byte

func (r *sonicRaw) UnmarshalJSON(data []byte) error {
	*r = append((*r)[:0], data...)
	return nil
}

func (r sonicRaw) empty() bool {
	trimmed := bytes.TrimSpace(r)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// normalizePagination fills missing fields: page 1, the requested limit or
// the resource default, total 0.
func normalizePagination(p *paginationEnvelope, params page.Params, defaultLimit int) page.Pagination {
	out := page.Pagination{
		Page:  page.DefaultPage,
		Limit: params.Int(page.KeyLimit, defaultLimit),
		Total: 0,
	}
	if out.Limit <= 0 {
		out.Limit = defaultLimit
	}
	if p == nil {
		return out
	}
	if p.CurrentPage > 0 {
		out.Page = p.CurrentPage
	}
	if p.ItemsPerPage > 0 {
		out.Limit = p.ItemsPerPage
	}
	if p.TotalItems > 0 {
		out.Total = p.TotalItems
	}
	return out
}

func getEnvelope[T any](ctx context.Context, c *Client, op, path string, params page.Params) (envelope[T], error) {
	var env envelope[T]
	raw, err := c.do(ctx, op, http.MethodGet, path, params.Values(), nil)
	if err != nil {
		return env, err
	}
	if err := decode(raw, &env); err != nil {
		return env, crerr.Wrapf(err, "decode %s response", op)
	}
	return env, nil
}

func sendEnvelope[T any](ctx context.Context, c *Client, op, method, path string, body any) (T, error) {
	var env envelope[T]
	raw, err := c.do(ctx, op, method, path, nil, body)
	if err != nil {
		return env.Data, err
	}
	if err := decode(raw, &env); err != nil {
		return env.Data, crerr.Wrapf(err, "decode %s response", op)
	}
	return env.Data, nil
}

func getData[T any](ctx context.Context, c *Client, op, path string) (T, error) {
	env, err := getEnvelope[T](ctx, c, op, path, nil)
	return env.Data, err
}

// listPage loads a list endpoint as a page.Result.
func listPage[T any](ctx context.Context, c *Client, op, path string, params page.Params, defaultLimit int) page.Result[T] {
	env, err := getEnvelope[[]T](ctx, c, op, path, params)
	if err != nil {
		return page.Fail[T](err)
	}
	return page.Ok(page.Page[T]{
		Items:      env.Data,
		Pagination: normalizePagination(env.Pagination, params, defaultLimit),
	})
}

func decode(raw []byte, target any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	return sonic.Unmarshal(raw, target)
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any) ([]byte, error) {
	ctx, span := c.startSpan(ctx, op, method, path)
	defer span.End()

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	var payload []byte
	if body != nil {
		encoded, err := sonic.Marshal(body)
		if err != nil {
			return nil, crerr.Wrapf(err, "encode %s request", op)
		}
		payload = encoded
	}
	raw, err := c.guarded(ctx, op, method, path, fullURL, payload)
	recordSpanError(span, err)
	return raw, err
}

// guarded applies the breaker and the rate limiter around one request.
func (c *Client) guarded(ctx context.Context, op, method, path, fullURL string, payload []byte) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "ranking api circuit breaker rejected request", "op", op, "state", c.breaker.State())
			return nil, &usecase.NetworkError{
				Method: method,
				Path:   path,
				Err:    crerr.Wrap(usecase.ErrDependencyUnavailable, "ranking service is temporarily unavailable"),
			}
		}
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			if c.circuitEnabled {
				c.breaker.RecordSuccess()
			}
			return nil, &usecase.NetworkError{Method: method, Path: path, Err: crerr.Wrap(err, "wait for rate limiter")}
		}
	}

	raw, err := c.execute(ctx, op, method, path, fullURL, payload)
	if c.circuitEnabled {
		if isCircuitFailure(err) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	return raw, err
}

func (c *Client) execute(ctx context.Context, op, method, path, fullURL string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, crerr.Wrapf(err, "build %s request", op)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	requestID, err := c.requestIDs.NewID()
	if err == nil {
		req.Header.Set(id.RequestHeader, requestID)
	}

	if c.logger.Enabled(logging.LevelDebug) {
		c.logger.DebugContext(ctx, "ranking api request", "op", op, "request_id", requestID, "curl", buildCurlPreview(method, fullURL, payload))
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "ranking api request failed", "op", op, "method", method, "path", path, "request_id", requestID, "error", err)
		return nil, &usecase.NetworkError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &usecase.NetworkError{Method: method, Path: path, Err: crerr.Wrap(err, "read response body")}
	}

	c.logger.DebugContext(ctx, "ranking api response",
		"op", op,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &usecase.APIError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(raw),
			Method:     method,
			Path:       path,
		}
	}
	return raw, nil
}

// extractMessage reads "message", "error.message" or a string "error" from
// an error body.
func extractMessage(raw []byte) string {
	if len(bytes.TrimSpace(raw)) == 0 {
		return ""
	}
	var body map[string]any
	if err := sonic.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if msg, ok := body["message"].(string); ok && strings.TrimSpace(msg) != "" {
		return strings.TrimSpace(msg)
	}
	switch nested := body["error"].(type) {
	case map[string]any:
		if msg, ok := nested["message"].(string); ok {
			return strings.TrimSpace(msg)
		}
	case string:
		return strings.TrimSpace(nested)
	}
	return ""
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *usecase.APIError
	if crerr.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= http.StatusInternalServerError
	}
	return crerr.Is(err, usecase.ErrNetwork)
}

func (c *Client) startSpan(ctx context.Context, op, method, path string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	return tracer.Start(ctx, "rankingapi."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
}

func recordSpanError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func idPath(format string, ids ...int64) string {
	args := make([]any, 0, len(ids))
	for _, v := range ids {
		args = append(args, v)
	}
	return fmt.Sprintf(format, args...)
}
