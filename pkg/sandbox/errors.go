package sandbox

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrMissingCredentials is raised synchronously at turn start when the
// provider credentials are absent from the environment.
var ErrMissingCredentials = errors.New("sandbox credentials not configured (VERCEL_TOKEN, VERCEL_PROJECT_ID, VERCEL_TEAM_ID)")

// APIError is a non-2xx response from the sandbox provider.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sandbox provider error (HTTP %d): %s", e.StatusCode, e.Message)
}

// IsGone reports whether an error means the sandbox no longer exists or has
// stopped. Tool calls intercept this once per call and re-acquire.
func IsGone(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusGone {
			return true
		}
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "sandbox is not running") ||
		strings.Contains(msg, "sandbox not found")
}
