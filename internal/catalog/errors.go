// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse indicates the catalog returned XML that is not
	// well-formed or lacks a required field.
	ErrMalformedResponse = errors.New("malformed catalog response")

	// ErrUpstreamTimeout indicates the outbound request hit its deadline.
	ErrUpstreamTimeout = errors.New("catalog request timed out")

	// ErrClientClosed is returned by Fetch after Close.
	ErrClientClosed = errors.New("catalog client closed")
)

// UpstreamError reports a non-success HTTP status from the catalog.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("catalog returned status code %d", e.StatusCode)
}

// TransportError wraps a failure to reach the catalog at all
// (connection refused, DNS, reset).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("catalog request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// malformed wraps ErrMalformedResponse with detail.
func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedResponse, fmt.Sprintf(format, args...))
}
