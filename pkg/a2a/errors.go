package a2a

import (
	"fmt"
	"net/http"
	"time"
)

// TimeoutError indicates a network call did not complete within the
// configured per-call timeout. The message embeds the configured duration so
// callers can tune timeouts independently from diagnosing connectivity.
type TimeoutError struct {
	URL     string
	Timeout time.Duration
}

// Error implements the error interface for TimeoutError
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s timed out after %dms", e.URL, e.Timeout.Milliseconds())
}

// HTTPError indicates a non-2xx HTTP status. Body carries the best-effort
// response body text for the send phase and is empty for discovery.
type HTTPError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface for HTTPError
func (e *HTTPError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("HTTP error %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
	}
	return fmt.Sprintf("HTTP error %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}
