package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnexpectedResponse is returned when the backend replies with a shape
// that cannot be parsed as JSON (an HTML error page, a proxy banner).
var ErrUnexpectedResponse = errors.New("unexpected upstream response")

// ErrNotFound is matched by any APIError carrying a 404.
var ErrNotFound = errors.New("resource not found")

// ErrUnavailable is matched when the circuit breaker is open or the upstream
// cannot be reached; callers may switch to the demo fallback when enabled.
var ErrUnavailable = errors.New("upstream unavailable")

// APIError is a non-2xx backend response reduced to one human-readable
// message, extracted from the structured error payload when present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream request failed with status %d: %s", e.Status, e.Message)
}

// Is lets callers match coarse categories without inspecting status codes.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnavailable:
		return e.Status == http.StatusBadGateway || e.Status == http.StatusServiceUnavailable
	default:
		return false
	}
}

// newAPIError parses a failed response body for the backend's error fields
// (detail/title or their Hydra equivalents), with a resilient fallback when
// the body is HTML or unparsable JSON.
func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Detail           string `json:"detail"`
		Title            string `json:"title"`
		Message          string `json:"message"`
		HydraDescription string `json:"hydra:description"`
		HydraTitle       string `json:"hydra:title"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, msg := range []string{
			payload.Detail,
			payload.HydraDescription,
			payload.Message,
			payload.Title,
			payload.HydraTitle,
		} {
			if msg != "" {
				return &APIError{Status: status, Message: msg}
			}
		}
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" || strings.HasPrefix(msg, "<") {
		msg = http.StatusText(status)
	}
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return &APIError{Status: status, Message: msg}
}
