// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-proxy/pkg/types"
)

func TestNewPooledClient_Defaults(t *testing.T) {
	client := NewPooledClient(types.CatalogConfig{})
	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)

	assert.Equal(t, defaultMaxIdleConns, transport.MaxIdleConns)
	assert.Equal(t, defaultMaxIdleConnsPerHost, transport.MaxIdleConnsPerHost)
	assert.Equal(t, defaultIdleConnTimeout, transport.IdleConnTimeout)
	assert.Zero(t, client.Timeout)
}

func TestNewPooledClient_FromConfig(t *testing.T) {
	client := NewPooledClient(types.CatalogConfig{
		MaxIdleConns:        7,
		MaxIdleConnsPerHost: 3,
		IdleConnTimeout:     5 * time.Second,
	})
	transport := client.Transport.(*http.Transport)

	assert.Equal(t, 7, transport.MaxIdleConns)
	assert.Equal(t, 3, transport.MaxIdleConnsPerHost)
	assert.Equal(t, 5*time.Second, transport.IdleConnTimeout)
}

func TestNewPooledClient_ReusesConnection(t *testing.T) {
	var conns int32
	ts := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "ok")
	}))
	ts.Config.ConnState = func(_ net.Conn, state http.ConnState) {
		if state == http.StateNew {
			atomic.AddInt32(&conns, 1)
		}
	}
	ts.Start()
	defer ts.Close()

	client := NewPooledClient(types.CatalogConfig{})
	defer CloseIdle(client)

	for i := 0; i < 3; i++ {
		resp, err := client.Get(ts.URL)
		require.NoError(t, err)
		DrainAndClose(resp.Body)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&conns))
}

func TestCloseIdle_NilClient(t *testing.T) {
	assert.NotPanics(t, func() { CloseIdle(nil) })
}

type trackingBody struct {
	io.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

func TestDrainAndClose(t *testing.T) {
	body := &trackingBody{Reader: strings.NewReader("leftover")}
	DrainAndClose(body)
	assert.True(t, body.closed)

	assert.NotPanics(t, func() { DrainAndClose(nil) })
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestIsTimeout(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped deadline", fmt.Errorf("get: %w", context.DeadlineExceeded), true},
		{"net timeout", timeoutErr{}, true},
		{"canceled", context.Canceled, false},
		{"other", errors.New("connection refused"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTimeout(tt.err))
		})
	}
}

func TestIsTimeout_RequestDeadline(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	_, err = NewPooledClient(types.CatalogConfig{}).Do(req)
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
}
