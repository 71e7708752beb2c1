package calendar

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithHTTPTimeout(t *testing.T) {
	e := &Engine{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set")
	}
	if err := WithHTTPTimeout(0)(e); err == nil {
		t.Fatal("expected error for zero timeout")
	}
}

func TestWithDebugLoggingKeepsTransportWorking(t *testing.T) {
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})

	e := New("http://example.com", "u-1", WithHTTPTimeout(2*time.Second), WithDebugLogging(true))
	// Inject base transport after construction for the test.
	e.http.Transport = rt

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", strings.NewReader(""))
	if _, err := e.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatalf("base transport not invoked")
	}
}

func TestWithFilters(t *testing.T) {
	e := New("http://example.com", "u-1", WithFilters(Filters{Tasks: true, Leads: true}))
	got := e.Filters()
	if !got.Tasks || !got.Leads || got.Contents {
		t.Fatalf("unexpected filters: %+v", got)
	}
}
