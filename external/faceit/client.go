package faceit

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
	"github.com/riskibarqy/faceit-league-dashboard/internal/platform/logging"
	"github.com/riskibarqy/faceit-league-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/faceit-league-dashboard/internal/platform/schema"
	"github.com/riskibarqy/faceit-league-dashboard/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultOfficialBaseURL = "https://open.faceit.com/data/v4"
	DefaultWebBaseURL      = "https://www.faceit.com/api"

	defaultTimeout      = 15 * time.Second
	defaultRetryBackoff = time.Second
	maxResponseBytes    = 8 << 20
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.BreakerConfig
}

// transport is the request pipeline shared by both clients: breaker, retry,
// GET de-duplication and schema decoding.
type transport struct {
	name       string
	httpClient *http.Client
	baseURL    string
	apiKey     string
	maxRetries int
	backoff    time.Duration
	logger     *logging.Logger
	breaker    *resilience.Breaker
	flight     singleflight.Group
}

type apiRequest struct {
	method string
	path   string
	query  url.Values
	body   any
}

func newTransport(name, defaultBaseURL string, cfg ClientConfig) *transport {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}

	return &transport{
		name:       name,
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		maxRetries: max(cfg.MaxRetries, 0),
		backoff:    backoff,
		logger:     logger.With("client", name),
		breaker:    resilience.NewBreaker(cfg.CircuitBreaker),
	}
}

func (t *transport) doJSON(ctx context.Context, req apiRequest, target any) error {
	method := req.method
	if method == "" {
		method = http.MethodGet
	}
	fullURL := t.baseURL + req.path
	if encoded := req.query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	var payload []byte
	if req.body != nil {
		encoded, err := sonic.Marshal(req.body)
		if err != nil {
			return crerr.Wrap(err, "encode request body")
		}
		payload = encoded
	}

	call := func() ([]byte, error) {
		var raw []byte
		err := t.breaker.Do(func() error {
			var reqErr error
			raw, reqErr = t.executeRequest(ctx, method, fullURL, payload)
			return reqErr
		}, isCircuitFailure)
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			t.logger.WarnContext(ctx, "faceit circuit breaker rejected request", "state", t.breaker.State())
			return nil, fmt.Errorf("%w: faceit %s api is temporarily unavailable", usecase.ErrDependencyUnavailable, t.name)
		}
		return raw, err
	}

	var raw []byte
	if method == http.MethodGet {
		out, err, _ := t.flight.Do(fullURL, func() (any, error) {
			return call()
		})
		if err != nil {
			return err
		}
		body, ok := out.([]byte)
		if !ok {
			return fmt.Errorf("unexpected response payload type %T", out)
		}
		raw = body
	} else {
		body, err := call()
		if err != nil {
			return err
		}
		raw = body
	}

	if err := schema.Decode(raw, target); err != nil {
		return crerr.Wrapf(err, "decode %s %s", method, req.path)
	}
	return nil
}

func (t *transport) executeRequest(ctx context.Context, method, fullURL string, payload []byte) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= t.maxRetries; attempt++ {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
		if err != nil {
			return nil, crerr.Wrap(err, "build request")
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		if t.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+t.apiKey)
		}

		resp, err := t.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = fmt.Errorf("%w: send request: %s", errTransient, t.redact(err.Error()))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			default:
				apiErr := &APIError{
					Method:     method,
					Target:     fullURL,
					StatusCode: resp.StatusCode,
					Status:     resp.Status,
					Header:     resp.Header.Clone(),
					Body:       raw,
				}
				if !apiErr.Temporary() {
					return nil, apiErr
				}
				lastErr = apiErr
			}
		}

		if attempt == t.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * t.backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("%w: request failed", errTransient)
	}
	t.logger.WarnContext(ctx, "faceit request failed", "method", method, "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (t *transport) redact(value string) string {
	if t.apiKey == "" {
		return value
	}
	return strings.ReplaceAll(value, t.apiKey, "REDACTED")
}

func pathf(format string, ids ...string) string {
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, url.PathEscape(strings.TrimSpace(id)))
	}
	return fmt.Sprintf(format, args...)
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
