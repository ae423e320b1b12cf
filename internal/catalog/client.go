// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog talks to the arXiv query endpoint: it translates
// QueryParams into the catalog's query string, issues the request over a
// pooled connection, and parses the Atom response into papers.
package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paper-proxy/internal/httputil"
	"github.com/pdiddy/paper-proxy/pkg/types"
)

const (
	// DefaultBaseURL is the arXiv query endpoint.
	DefaultBaseURL = "http://export.arxiv.org/api/query"

	// DefaultTimeout bounds one outbound request including the body read.
	DefaultTimeout = 30 * time.Second

	defaultUserAgent = "paper-proxy"
)

// Client fetches and parses one page of catalog results per call. The
// pooled HTTP client is created on the first Fetch and shared by all later
// calls until Close.
type Client struct {
	baseURL   string
	timeout   time.Duration
	userAgent string
	cfg       types.CatalogConfig
	logger    *zerolog.Logger

	mu     sync.Mutex
	http   *http.Client
	closed bool
}

// NewClient returns a Client for cfg. No connections are opened until the
// first Fetch.
func NewClient(cfg types.CatalogConfig, logger *zerolog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Client{
		baseURL:   baseURL,
		timeout:   timeout,
		userAgent: userAgent,
		cfg:       cfg,
		logger:    logger,
	}
}

// session returns the shared HTTP client, creating it on first use.
func (c *Client) session() (*http.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClientClosed
	}
	if c.http == nil {
		c.http = httputil.NewPooledClient(c.cfg)
		c.logger.Debug().Str("base_url", c.baseURL).Msg("Opened catalog connection pool")
	}
	return c.http, nil
}

// Close releases the connection pool. It is safe to call before any Fetch
// and more than once. Fetch fails with ErrClientClosed afterwards.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	if c.http != nil {
		httputil.CloseIdle(c.http)
		c.http = nil
		c.logger.Debug().Msg("Closed catalog connection pool")
	}
	return nil
}

// Fetch issues one catalog request for q and parses the response.
//
// Failures are one of: *UpstreamError for a non-200 status,
// ErrMalformedResponse for an unparseable or incomplete body,
// ErrUpstreamTimeout when the deadline expires, *TransportError for any
// other network failure, or ErrClientClosed.
func (c *Client) Fetch(ctx context.Context, q types.QueryParams) (types.SearchResult, error) {
	client, err := c.session()
	if err != nil {
		return types.SearchResult{}, err
	}

	reqURL, err := c.requestURL(q)
	if err != nil {
		return types.SearchResult{}, fmt.Errorf("building catalog URL: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return types.SearchResult{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/atom+xml")

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return types.SearchResult{}, c.classify(err)
	}

	if resp.StatusCode != http.StatusOK {
		httputil.DrainAndClose(resp.Body)
		c.logger.Warn().Int("status", resp.StatusCode).Str("query", q.String()).Msg("Catalog returned non-success status")
		return types.SearchResult{}, &UpstreamError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return types.SearchResult{}, c.classify(err)
	}

	feed, err := ParseFeed(bytes.NewReader(body))
	if err != nil {
		return types.SearchResult{}, err
	}

	c.logger.Debug().
		Int("papers", len(feed.Papers)).
		Int("total_results", feed.TotalResults).
		Dur("elapsed", time.Since(start)).
		Msg("Fetched catalog page")

	return types.SearchResult{
		Papers: feed.Papers,
		Metadata: types.SearchMetadata{
			TotalResults: feed.TotalResults,
			StartIndex:   q.Start(),
			ItemsPerPage: q.MaxResults(),
		},
	}, nil
}

// classify maps a transport-level failure onto the error taxonomy.
func (c *Client) classify(err error) error {
	if httputil.IsTimeout(err) {
		return fmt.Errorf("%w after %s", ErrUpstreamTimeout, c.timeout)
	}
	return &TransportError{Err: err}
}

// requestURL appends the catalog query parameters to the base URL,
// keeping any parameters the base URL already carries.
func (c *Client) requestURL(q types.QueryParams) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	values := u.Query()
	for k, v := range QueryValues(q) {
		values[k] = v
	}
	u.RawQuery = values.Encode()
	return u.String(), nil
}

// QueryValues translates q into the catalog's query-string contract. The
// ID list is joined with commas into one parameter, empty when there are
// no IDs.
func QueryValues(q types.QueryParams) url.Values {
	v := url.Values{}
	v.Set("search_query", q.SearchQuery())
	v.Set("id_list", strings.Join(q.IDList(), ","))
	v.Set("start", strconv.Itoa(q.Start()))
	v.Set("max_results", strconv.Itoa(q.MaxResults()))
	v.Set("sortBy", string(q.SortBy()))
	v.Set("sortOrder", string(q.SortOrder()))
	return v
}
