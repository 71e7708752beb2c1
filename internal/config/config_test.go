package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.HTTPTimeout.String() != "30s" {
		t.Fatalf("unexpected HTTPTimeout: %v", cfg.HTTPTimeout)
	}
	if cfg.FetchMaxAttempts != 3 {
		t.Fatalf("unexpected FetchMaxAttempts: %v", cfg.FetchMaxAttempts)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LIFEDASH_BASE_URL", "http://dash.local:9000")
	t.Setenv("LIFEDASH_USER_ID", "u-42")
	t.Setenv("LIFEDASH_HTTP_TIMEOUT", "5s")
	t.Setenv("LIFEDASH_FETCH_MAX_ATTEMPTS", "1")
	t.Setenv("LIFEDASH_FETCH_BASE_BACKOFF", "10ms")
	t.Setenv("LIFEDASH_FETCH_MAX_INTERVAL", "1s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.BaseURL != "http://dash.local:9000" || cfg.UserID != "u-42" {
		t.Fatalf("unexpected BaseURL/UserID: %+v", cfg)
	}
	if cfg.HTTPTimeout.String() != "5s" || cfg.FetchMaxAttempts != 1 {
		t.Fatalf("unexpected timeout/attempts: %+v", cfg)
	}
	if cfg.FetchBaseBackoff.String() != "10ms" || cfg.FetchMaxInterval.String() != "1s" {
		t.Fatalf("unexpected backoff settings: %+v", cfg)
	}
}
