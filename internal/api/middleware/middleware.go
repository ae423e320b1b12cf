// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package middleware holds the go-restful container filters shared by every
// route: request logging with a request id, and panic recovery.
package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// RequestIDHeader carries the request id in and out.
	RequestIDHeader = "X-Request-ID"

	// RequestIDAttribute is the restful.Request attribute holding the id.
	RequestIDAttribute = "request_id"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`

	// Kind classifies the failure (invalid_query, upstream_status,
	// malformed_response, transport, timeout, internal).
	Kind string `json:"kind,omitempty"`

	// UpstreamStatus is the catalog's status code for upstream_status
	// failures.
	UpstreamStatus int `json:"upstream_status,omitempty"`
}

// WriteError writes body with status.
func WriteError(resp *restful.Response, status int, body ErrorResponse) {
	if err := resp.WriteHeaderAndJson(status, body, restful.MIME_JSON); err != nil {
		resp.WriteHeader(status)
	}
}

// HandleError writes err as an internal failure with status.
func HandleError(resp *restful.Response, err error, status int) {
	WriteError(resp, status, ErrorResponse{Error: err.Error(), Kind: "internal"})
}

// Logger returns a filter that tags each request with an id, attaches a
// request-scoped logger to its context and logs the outcome.
func Logger(logger *zerolog.Logger) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		start := time.Now()

		id := req.HeaderParameter(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		req.SetAttribute(RequestIDAttribute, id)
		resp.AddHeader(RequestIDHeader, id)

		reqLogger := logger.With().Str("request_id", id).Logger()
		req.Request = req.Request.WithContext(reqLogger.WithContext(req.Request.Context()))

		chain.ProcessFilter(req, resp)

		status := resp.StatusCode()
		event := reqLogger.Info()
		if status >= http.StatusInternalServerError {
			event = reqLogger.Error()
		} else if status >= http.StatusBadRequest {
			event = reqLogger.Warn()
		}
		event.
			Str("method", req.Request.Method).
			Str("path", req.Request.URL.Path).
			Str("query", req.Request.URL.RawQuery).
			Int("status", status).
			Int("bytes", resp.ContentLength()).
			Dur("elapsed", time.Since(start)).
			Msg("Handled request")
	}
}

// RecoverPanic returns a filter that turns a handler panic into a 500.
func RecoverPanic(logger *zerolog.Logger) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Interface("panic", r).
					Str("path", req.Request.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("Recovered from handler panic")
				HandleError(resp, errors.New("internal server error"), http.StatusInternalServerError)
			}
		}()
		chain.ProcessFilter(req, resp)
	}
}
