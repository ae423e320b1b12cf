// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides outbound HTTP helpers: a pooled client built
// from configuration, response draining, and timeout detection.
package httputil

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/pdiddy/paper-proxy/pkg/types"
)

// Pool defaults applied when the configuration leaves a field at zero.
const (
	defaultMaxIdleConns        = 100
	defaultMaxIdleConnsPerHost = 10
	defaultIdleConnTimeout     = 90 * time.Second
	defaultDialTimeout         = 10 * time.Second
)

// maxDrainBytes bounds how much of an unread body is discarded so the
// connection can return to the pool.
const maxDrainBytes = 64 << 10

// NewPooledClient builds an *http.Client whose transport keeps idle
// connections to the catalog open between requests. The client itself has
// no Timeout; callers bound each request with a context deadline.
func NewPooledClient(cfg types.CatalogConfig) *http.Client {
	maxIdle := cfg.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = defaultMaxIdleConns
	}
	perHost := cfg.MaxIdleConnsPerHost
	if perHost <= 0 {
		perHost = defaultMaxIdleConnsPerHost
	}
	idle := cfg.IdleConnTimeout
	if idle <= 0 {
		idle = defaultIdleConnTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   defaultDialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          maxIdle,
		MaxIdleConnsPerHost:   perHost,
		IdleConnTimeout:       idle,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &http.Client{Transport: transport}
}

// CloseIdle releases the idle connections held by client's transport.
// It is a no-op for a nil client.
func CloseIdle(client *http.Client) {
	if client == nil {
		return
	}
	client.CloseIdleConnections()
}

// DrainAndClose discards up to maxDrainBytes of body and closes it, so the
// underlying connection can be reused.
func DrainAndClose(body io.ReadCloser) {
	if body == nil {
		return
	}
	io.Copy(io.Discard, io.LimitReader(body, maxDrainBytes))
	body.Close()
}

// IsTimeout reports whether err is a deadline expiry, either from the
// request context or from the network layer.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
