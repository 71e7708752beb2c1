package calendar

import (
	"io"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/lifedash/lifedash-go/internal/httperr"
)

// retryTransport retries idempotent reads on transient failures.
// Only GETs are retried; every mutation gets exactly one attempt, so a
// PATCH or PUT can never be applied twice. Responses whose status is
// classified irrecoverable pass straight through for the API layer to
// report.
type retryTransport struct {
	base        http.RoundTripper
	maxAttempts int
	baseBackoff time.Duration
	maxInterval time.Duration
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return t.base.RoundTrip(req)
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = t.baseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = t.maxInterval
	exp.Reset()

	attempts := t.maxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var resp *http.Response
	var err error
	for attempt := 1; ; attempt++ {
		resp, err = t.base.RoundTrip(req)
		if err == nil && httperr.ClassifyStatus(resp.StatusCode) == httperr.Irrecoverable {
			return resp, nil
		}
		if err == nil && resp.StatusCode < 400 {
			return resp, nil
		}
		if attempt >= attempts {
			return resp, err
		}
		if resp != nil {
			// Drain so the connection can be reused.
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}
		select {
		case <-time.After(exp.NextBackOff()):
		case <-req.Context().Done():
			return nil, req.Context().Err()
		}
	}
}
