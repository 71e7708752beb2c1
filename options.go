package calendar

// Functional options applied by New. Kept in a standalone file so every
// available knob is discoverable at a glance.

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Option configures an Engine during construction in New.
//
// Options run before the transport wrappers are installed, so
// transport-related options end up underneath the retry and identity
// layers. Options must be deterministic and side-effect free.
type Option func(*Engine) error

// WithHTTPTimeout sets the underlying http.Client Timeout.
//
// Prefer per-call context deadlines where possible; this is a coarse
// safety net bounding one HTTP request end to end. Must be > 0.
func WithHTTPTimeout(d time.Duration) Option {
	return func(e *Engine) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		e.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the transport so each request/response is
// dumped when enabled is true. Not for production use: dumps include
// headers and bodies.
func WithDebugLogging(enabled bool) Option {
	return func(e *Engine) error {
		if enabled {
			e.http.Transport = &debugTransport{base: e.http.Transport}
		}
		return nil
	}
}

// WithLogger replaces the engine's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) error {
		e.log = l
		return nil
	}
}

// WithFilters sets the initial filter configuration instead of the
// contents-only default. No fetch is triggered; call Refetch (or
// SetFilters later) to load data.
func WithFilters(f Filters) Option {
	return func(e *Engine) error {
		e.filters = f
		return nil
	}
}
