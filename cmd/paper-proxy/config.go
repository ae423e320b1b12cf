// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/paper-proxy/internal/cache"
	"github.com/pdiddy/paper-proxy/internal/catalog"
	"github.com/pdiddy/paper-proxy/pkg/types"
)

// setDefaults registers every config key so that environment variables
// bind even when no config file is present.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":5000")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("catalog.base_url", catalog.DefaultBaseURL)
	v.SetDefault("catalog.timeout", catalog.DefaultTimeout)
	v.SetDefault("catalog.user_agent", "paper-proxy/"+version)
	v.SetDefault("catalog.max_idle_conns", 100)
	v.SetDefault("catalog.max_idle_conns_per_host", 10)
	v.SetDefault("catalog.idle_conn_timeout", 90*time.Second)

	v.SetDefault("cache.capacity", cache.DefaultCapacity)
	v.SetDefault("cache.ttl", cache.DefaultTTL)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", string(types.LogConsole))
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 15)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
}

// loadConfig decodes v into a ProxyConfig.
func loadConfig(v *viper.Viper) (types.ProxyConfig, error) {
	var cfg types.ProxyConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	switch cfg.Log.Format {
	case types.LogConsole, types.LogJSON:
	default:
		return cfg, fmt.Errorf("unknown log.format %q (want console or json)", cfg.Log.Format)
	}
	return cfg, nil
}
