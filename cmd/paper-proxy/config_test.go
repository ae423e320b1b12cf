// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-proxy/pkg/types"
)

func newTestViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("PAPER_PROXY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(newTestViper())
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, "http://export.arxiv.org/api/query", cfg.Catalog.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, "paper-proxy/"+version, cfg.Catalog.UserAgent)
	assert.Equal(t, 100, cfg.Catalog.MaxIdleConns)
	assert.Equal(t, 10, cfg.Catalog.MaxIdleConnsPerHost)
	assert.Equal(t, 90*time.Second, cfg.Catalog.IdleConnTimeout)

	assert.Equal(t, 1000, cfg.Cache.Capacity)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, types.LogConsole, cfg.Log.Format)
	assert.Equal(t, 15, cfg.Log.MaxSizeMB)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PAPER_PROXY_SERVER_ADDR", ":8080")
	t.Setenv("PAPER_PROXY_CATALOG_TIMEOUT", "5s")
	t.Setenv("PAPER_PROXY_CACHE_TTL", "10m")
	t.Setenv("PAPER_PROXY_LOG_FORMAT", "json")

	cfg, err := loadConfig(newTestViper())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, types.LogJSON, cfg.Log.Format)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paper-proxy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9000"
  allowed_origins: ["http://localhost:3000"]
catalog:
  base_url: "http://catalog.test/api/query"
  user_agent: "paper-proxy-test"
cache:
  capacity: 50
`), 0o644))

	v := newTestViper()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "http://catalog.test/api/query", cfg.Catalog.BaseURL)
	assert.Equal(t, "paper-proxy-test", cfg.Catalog.UserAgent)
	assert.Equal(t, 50, cfg.Cache.Capacity)
	assert.Equal(t, time.Hour, cfg.Cache.TTL, "unset keys keep their defaults")
}

func TestConfigPathsFindsHomeConfig(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".config", "paper-proxy")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "paper-proxy.yaml"), []byte("server:\n  addr: \":7000\"\n"), 0o644))
	t.Chdir(t.TempDir())

	v := newTestViper()
	configPaths(v, "", home)
	require.NoError(t, v.ReadInConfig())
	assert.Equal(t, filepath.Join(dir, "paper-proxy.yaml"), v.ConfigFileUsed())

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr)
}

func TestConfigPathsExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache:\n  capacity: 7\n"), 0o644))

	v := newTestViper()
	configPaths(v, path, "")
	require.NoError(t, v.ReadInConfig())

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Cache.Capacity)
}

func TestLoadConfigRejectsUnknownLogFormat(t *testing.T) {
	v := newTestViper()
	v.Set("log.format", "xml")

	_, err := loadConfig(v)
	assert.ErrorContains(t, err, "log.format")
}
