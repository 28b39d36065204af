// SPDX-License-Identifier: MIT

package tvmaze

import (
	"errors"
	"fmt"
)

var (
	// Sentinel errors for errors.Is checks at the boundary.
	ErrNotFound            = errors.New("tvmaze: resource not found")
	ErrForbidden           = errors.New("tvmaze: access forbidden")
	ErrRateLimited         = errors.New("tvmaze: rate limited by upstream")
	ErrUpstreamUnavailable = errors.New("tvmaze: host unreachable or transport failure")
	ErrUpstreamError       = errors.New("tvmaze: upstream error response")
	ErrBadResponse         = errors.New("tvmaze: invalid response format or malformed data")
	ErrTimeout             = errors.New("tvmaze: request timed out")

	// ErrInvalidPeriod rejects update periods outside day/week/month.
	ErrInvalidPeriod = errors.New("tvmaze: unsupported update period")
)

// APIError is a rich error type that wraps the sentinel errors with context.
type APIError struct {
	Sentinel  error
	Operation string
	Status    int
	Body      string
	Err       error // Nested lower-level error (e.g. net.Error)
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("tvmaze: %s: %v", e.Operation, e.Sentinel)
	if e.Status > 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.Body != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Body)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.Sentinel
}
