package client

import (
	"fmt"
	"net/http"

	"pkt.systems/seekd/api"
)

// APIError describes an error response from the seekd service.
// Transport implementations construct it; callers unwrap it with
// errors.As to inspect the status and server diagnostics.
type APIError struct {
	// Status is the HTTP status code returned by the server.
	Status int
	// Response is the decoded seekd error envelope, when available.
	Response api.ErrorResponse
	// Body contains the raw response body bytes for additional diagnostics.
	Body []byte
}

func (e *APIError) Error() string {
	if e.Response.Message != "" {
		return fmt.Sprintf("seekd: %s (status %d)", e.Response.Message, e.Status)
	}
	return fmt.Sprintf("seekd: status %d", e.Status)
}

// NotFound reports whether the server answered 404.
func (e *APIError) NotFound() bool {
	return e != nil && e.Status == http.StatusNotFound
}

// RateLimited reports whether the server answered 429.
func (e *APIError) RateLimited() bool {
	return e != nil && e.Status == http.StatusTooManyRequests
}
