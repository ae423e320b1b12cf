// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package api

import (
	"errors"
	"net/http"

	"github.com/pdiddy/paper-proxy/internal/api/middleware"
	"github.com/pdiddy/paper-proxy/internal/catalog"
	"github.com/pdiddy/paper-proxy/pkg/types"
)

// Failure kinds reported in ErrorResponse.Kind.
const (
	KindInvalidQuery      = "invalid_query"
	KindUpstreamStatus    = "upstream_status"
	KindMalformedResponse = "malformed_response"
	KindTransport         = "transport"
	KindTimeout           = "timeout"
	KindInternal          = "internal"
)

// errorStatus maps a service failure onto an HTTP status and error body.
// A non-success catalog status stays a 500 with the code in the message.
func errorStatus(err error) (int, middleware.ErrorResponse) {
	body := middleware.ErrorResponse{Error: err.Error()}

	var upstream *catalog.UpstreamError
	var transport *catalog.TransportError
	switch {
	case errors.Is(err, types.ErrInvalidQuery):
		body.Kind = KindInvalidQuery
		return http.StatusBadRequest, body
	case errors.As(err, &upstream):
		body.Kind = KindUpstreamStatus
		body.UpstreamStatus = upstream.StatusCode
		return http.StatusInternalServerError, body
	case errors.Is(err, catalog.ErrMalformedResponse):
		body.Kind = KindMalformedResponse
		return http.StatusBadGateway, body
	case errors.Is(err, catalog.ErrUpstreamTimeout):
		body.Kind = KindTimeout
		return http.StatusGatewayTimeout, body
	case errors.As(err, &transport):
		body.Kind = KindTransport
		return http.StatusBadGateway, body
	default:
		body.Kind = KindInternal
		return http.StatusInternalServerError, body
	}
}
