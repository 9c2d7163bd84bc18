package faceit

import (
	"fmt"
	"net/http"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/faceit-league-dashboard/internal/usecase"
)

var errTransient = crerr.New("faceit transient failure")

// APIError is a non-2xx response from either FACEIT API. Target is the
// requested URL; credentials travel in headers and never appear in it.
type APIError struct {
	Method     string
	Target     string
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("faceit %s %s: %s", e.Method, e.Target, e.Status)
	if body := abbreviateBody(e.Body); body != "" {
		msg += ": " + body
	}
	return msg
}

// Unwrap classifies the response so callers can match usecase sentinels
// without knowing about this package.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return usecase.ErrNotFound
	case isRetryableStatus(e.StatusCode):
		return usecase.ErrDependencyUnavailable
	default:
		return usecase.ErrUpstreamRejected
	}
}

// Temporary reports whether the request may succeed when retried.
func (e *APIError) Temporary() bool {
	return isRetryableStatus(e.StatusCode)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	if crerr.Is(err, errTransient) {
		return true
	}
	var apiErr *APIError
	return crerr.As(err, &apiErr) && apiErr.Temporary()
}
