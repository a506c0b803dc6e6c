// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by every recipe source.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "recipe-finder/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// PlaceholderAPIKey is the value shipped in sample configs. A key equal to
// it is treated as not configured.
const PlaceholderAPIKey = "YOUR_SPOONACULAR_API_KEY"

// SourceConfig holds settings for the primary and fallback recipe APIs.
type SourceConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// PrimaryBase is the Spoonacular API root.
	PrimaryBase string `json:"primary_base" yaml:"primary_base" mapstructure:"primary_base"`

	// FallbackBase is the TheMealDB API root.
	FallbackBase string `json:"fallback_base" yaml:"fallback_base" mapstructure:"fallback_base"`

	// APIKey is the Spoonacular credential. Empty or PlaceholderAPIKey
	// means the primary source is skipped.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// MaxResults caps the number of summaries per search (default 18).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`

	// MaxRetries is the number of 429 retries per request (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// PrimaryConfigured reports whether a usable primary credential is set.
func (c SourceConfig) PrimaryConfigured() bool {
	return c.APIKey != "" && c.APIKey != PlaceholderAPIKey
}

// StorageBackend selects where favorites are persisted.
type StorageBackend string

const (
	StorageSQLite StorageBackend = "sqlite"
	StorageRedis  StorageBackend = "redis"
	StorageMemory StorageBackend = "memory"
)

// StorageConfig holds settings for the durable key-value store.
type StorageConfig struct {
	Backend StorageBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// Path is the SQLite database file.
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// RedisURL is a redis:// URL used when Backend is redis.
	RedisURL string `json:"redis_url,omitempty" yaml:"redis_url,omitempty" mapstructure:"redis_url"`
}

// ServerConfig holds settings for the web UI.
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`
}

// Config groups all settings.
type Config struct {
	Sources  SourceConfig  `json:"sources" yaml:"sources" mapstructure:"sources"`
	Storage  StorageConfig `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server   ServerConfig  `json:"server" yaml:"server" mapstructure:"server"`
	LogLevel string        `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}
