// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-proxy/internal/api"
	"github.com/pdiddy/paper-proxy/internal/api/middleware"
	"github.com/pdiddy/paper-proxy/internal/logging"
	"github.com/pdiddy/paper-proxy/internal/search"
	"github.com/pdiddy/paper-proxy/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP search proxy",
	Long: `Serve starts the HTTP API. Searches are forwarded to the catalog and
cached in memory; identical searches within the cache TTL are answered
without contacting the catalog. SIGINT or SIGTERM drains in-flight requests
and closes the catalog connection pool.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :5000)")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log)
	defer logger.Close()

	svc := search.NewService(cfg, &logger.Logger)
	defer func() {
		if err := svc.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close search service")
		}
	}()

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      newRouter(cfg.Server, svc, &logger.Logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("address", cfg.Server.Addr).
			Str("catalog", cfg.Catalog.BaseURL).
			Int("cache_capacity", cfg.Cache.Capacity).
			Dur("cache_ttl", cfg.Cache.TTL).
			Msg("Starting paper proxy")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	stats := svc.CacheStats()
	logger.Info().
		Int64("cache_hits", stats.Hits).
		Int64("cache_misses", stats.Misses).
		Int64("catalog_fetches", stats.Fetches).
		Msg("Server stopped")
	return nil
}

// newRouter wires filters, API routes, the OpenAPI document and CORS.
func newRouter(cfg types.ServerConfig, searcher api.Searcher, logger *zerolog.Logger) http.Handler {
	container := restful.NewContainer()
	container.Filter(middleware.Logger(logger))
	container.Filter(middleware.RecoverPanic(logger))

	api.RegisterRoutes(container, api.NewHandler(searcher, logger))
	container.Add(api.NewOpenAPIService(container, version))

	return cors.New(corsOptions(cfg.AllowedOrigins)).Handler(container)
}

// corsOptions allows credentialed requests from the configured origins. A
// wildcard reflects the caller's Origin, since browsers reject
// Allow-Origin "*" on credentialed responses.
func corsOptions(origins []string) cors.Options {
	opts := cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		opts.AllowedOrigins = nil
		opts.AllowOriginFunc = func(string) bool { return true }
	}
	return opts
}
