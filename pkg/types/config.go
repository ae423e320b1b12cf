// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared settings for outbound HTTP requests.
type HTTPConfig struct {
	// Timeout is the deadline applied to each outbound request.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-proxy/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// CatalogConfig holds settings for the catalog fetch client.
type CatalogConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the catalog query endpoint.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// MaxIdleConns bounds the idle connections kept across all hosts.
	MaxIdleConns int `json:"max_idle_conns" yaml:"max_idle_conns" mapstructure:"max_idle_conns"`

	// MaxIdleConnsPerHost bounds the idle connections kept to the catalog host.
	MaxIdleConnsPerHost int `json:"max_idle_conns_per_host" yaml:"max_idle_conns_per_host" mapstructure:"max_idle_conns_per_host"`

	// IdleConnTimeout is how long an idle connection stays in the pool.
	IdleConnTimeout time.Duration `json:"idle_conn_timeout" yaml:"idle_conn_timeout" mapstructure:"idle_conn_timeout"`
}

// CacheConfig holds settings for the result cache.
type CacheConfig struct {
	// Capacity is the maximum number of cached searches (default 1000).
	Capacity int `json:"capacity" yaml:"capacity" mapstructure:"capacity"`

	// TTL is the lifetime of an entry measured from insertion (default 1h).
	TTL time.Duration `json:"ttl" yaml:"ttl" mapstructure:"ttl"`
}

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	Addr            string        `json:"addr" yaml:"addr" mapstructure:"addr"`
	ReadTimeout     time.Duration `json:"read_timeout" yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout" yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `json:"idle_timeout" yaml:"idle_timeout" mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`

	// AllowedOrigins lists the CORS origins accepted on /api routes.
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// LogFormat selects the log encoder.
type LogFormat string

const (
	LogConsole LogFormat = "console"
	LogJSON    LogFormat = "json"
)

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a zerolog level name (debug, info, warn, error).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format selects console or json output on stderr.
	Format LogFormat `json:"format" yaml:"format" mapstructure:"format"`

	// File, when set, receives JSON logs with size-based rotation.
	File string `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`

	MaxSizeMB  int `json:"max_size_mb" yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int `json:"max_backups" yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int `json:"max_age_days" yaml:"max_age_days" mapstructure:"max_age_days"`
}

// ProxyConfig groups all configuration for the proxy.
type ProxyConfig struct {
	Server  ServerConfig  `json:"server" yaml:"server" mapstructure:"server"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
	Cache   CacheConfig   `json:"cache" yaml:"cache" mapstructure:"cache"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}
