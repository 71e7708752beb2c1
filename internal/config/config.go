// Package config holds the engine tunables. Values are taken from
// environment variables with the prefix "LIFEDASH_". Example:
// LIFEDASH_HTTP_TIMEOUT=10s LIFEDASH_FETCH_MAX_ATTEMPTS=1 .
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config groups all tunables.
type Config struct {
	// BaseURL and UserID are CLI conveniences; library callers pass both
	// explicitly to New.
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:4000"`
	UserID  string `envconfig:"USER_ID" default:""`

	// Coarse safety net bounding a single HTTP request end to end.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// Retry policy for idempotent reads. Mutations are never retried.
	FetchMaxAttempts int           `envconfig:"FETCH_MAX_ATTEMPTS" default:"3"`
	FetchBaseBackoff time.Duration `envconfig:"FETCH_BASE_BACKOFF" default:"100ms"`
	FetchMaxInterval time.Duration `envconfig:"FETCH_MAX_INTERVAL" default:"5s"`
}

// Load populates Config from environment variables (prefix LIFEDASH_).
func Load() (Config, error) {
	var c Config
	return c, envconfig.Process("LIFEDASH", &c)
}
