// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search is the service layer between callers (HTTP handlers, CLI)
// and the catalog: it owns the catalog client and the result cache for its
// lifetime, and formats results for terminal output.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paper-proxy/internal/cache"
	"github.com/pdiddy/paper-proxy/internal/catalog"
	"github.com/pdiddy/paper-proxy/pkg/types"
)

// ErrPaperNotFound is returned by GetPaper when the catalog has no entry
// for the requested ID.
var ErrPaperNotFound = errors.New("paper not found")

// Service answers searches through the cache. Build one per process with
// NewService and Close it on shutdown.
type Service struct {
	fetcher cache.Fetcher
	cache   *cache.Cache
	logger  *zerolog.Logger
}

// NewService builds the catalog client and cache described by cfg.
func NewService(cfg types.ProxyConfig, logger *zerolog.Logger) *Service {
	client := catalog.NewClient(cfg.Catalog, logger)
	return New(client, cfg.Cache, logger)
}

// New wraps an arbitrary fetcher. If fetcher implements io.Closer it is
// closed by Close.
func New(fetcher cache.Fetcher, cfg types.CacheConfig, logger *zerolog.Logger) *Service {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Service{
		fetcher: fetcher,
		cache:   cache.New(fetcher, cfg, logger),
		logger:  logger,
	}
}

// Search returns one page of results for q.
func (s *Service) Search(ctx context.Context, q types.QueryParams) (types.SearchResult, error) {
	res, err := s.cache.Fetch(ctx, q)
	if err != nil {
		return types.SearchResult{}, fmt.Errorf("searching catalog: %w", err)
	}
	return res, nil
}

// GetPaper looks up a single paper by catalog ID.
func (s *Service) GetPaper(ctx context.Context, id string) (types.Paper, error) {
	q, err := types.ByID(id)
	if err != nil {
		return types.Paper{}, err
	}
	res, err := s.Search(ctx, q)
	if err != nil {
		return types.Paper{}, err
	}
	if len(res.Papers) == 0 {
		return types.Paper{}, fmt.Errorf("%w: %s", ErrPaperNotFound, id)
	}
	return res.Papers[0], nil
}

// CacheStats reports cache activity.
func (s *Service) CacheStats() cache.Stats {
	return s.cache.Stats()
}

// Close drops cached results and releases the catalog connection pool. The
// cache's expiry sweeper goroutine is not stopped; it lives until the
// process exits, so build one Service per process.
func (s *Service) Close() error {
	s.cache.Purge()
	if c, ok := s.fetcher.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("closing catalog client: %w", err)
		}
	}
	s.logger.Debug().Msg("Search service closed")
	return nil
}
