// Package calendar aggregates heterogeneous LifeDash records (content
// entries, tasks, job interviews, lead follow-ups, skill milestones)
// into a single date-keyed timeline and persists interactive
// reschedules back to the owning resource.
package calendar

import (
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/lifedash/lifedash-go/internal/config"
	"github.com/lifedash/lifedash-go/internal/types"
)

// Engine is the calendar aggregation engine. It owns the raw domain
// collections for the lifetime of a filter session and derives the item
// aggregate from them; items are recomputed from scratch on every
// refresh, never patched incrementally.
//
// All methods are safe for concurrent use. Note that a reschedule
// racing a filter-triggered refetch is resolved last-write-wins on the
// state slice each touches; the engine deliberately does not serialize
// the two (see DESIGN.md).
type Engine struct {
	baseURL string
	userID  string
	http    *http.Client
	log     zerolog.Logger
	cfg     config.Config

	mu      sync.Mutex
	filters Filters
	loading bool

	contents []types.Content
	tasks    []types.Task
	jobs     []types.Job
	leads    []types.Lead
	mastery  *types.SkillMastery

	items []types.CalendarItem
}

// New constructs an Engine for the backend at baseURL, acting as userID.
// Panics on empty baseURL. An empty userID is allowed and turns every
// fetch into a no-op: the engine treats "no authenticated user" as
// "nothing to show" rather than an error.
func New(baseURL, userID string, opts ...Option) *Engine {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	e := &Engine{
		baseURL: baseURL,
		userID:  userID,
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.HTTPTimeout},
		log:     zerolog.New(os.Stderr).With().Timestamp().Str("component", "calendar").Logger(),
		filters: DefaultFilters(),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			panic(err)
		}
	}

	e.wrapTransport()
	return e
}

// wrapTransport layers the engine's RoundTrippers: read-retry first,
// then the user-identity header outermost so retried attempts carry it
// too.
func (e *Engine) wrapTransport() {
	base := e.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	base = &retryTransport{
		base:        base,
		maxAttempts: e.cfg.FetchMaxAttempts,
		baseBackoff: e.cfg.FetchBaseBackoff,
		maxInterval: e.cfg.FetchMaxInterval,
	}
	if e.userID != "" {
		base = &userIDTransport{base: base, userID: e.userID}
	}
	e.http.Transport = base
}

// userIDTransport stamps the authenticated user header on every request.
type userIDTransport struct {
	base   http.RoundTripper
	userID string
}

func (t *userIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	cloned.Header.Set("X-User-Id", t.userID)
	return t.base.RoundTrip(cloned)
}

// Loading reports whether a refresh is in flight.
func (e *Engine) Loading() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loading
}

// Items returns the current aggregate in domain-priority order
// (contents, tasks, interviews, leads, milestones; source order within
// a domain). The returned slice is a copy.
func (e *Engine) Items() []CalendarItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]CalendarItem(nil), e.items...)
}

// ItemsForDate filters the aggregate down to one day. date may be a
// pre-formatted YYYY-MM-DD key or any timestamp string; both are
// normalized to the 10-character comparison key. An unparseable date
// yields no items.
func (e *Engine) ItemsForDate(date string) []CalendarItem {
	key, ok := dateKey(date)
	if !ok {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []CalendarItem
	for _, it := range e.items {
		if it.Date == key {
			out = append(out, it)
		}
	}
	return out
}

// ItemsForTime is ItemsForDate for callers holding a time.Time.
func (e *Engine) ItemsForTime(t time.Time) []CalendarItem {
	return e.ItemsForDate(timeKey(t))
}

// Contents returns the raw content records from the last refresh.
func (e *Engine) Contents() []Content {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.contents
}

// Tasks returns the raw task records from the last refresh.
func (e *Engine) Tasks() []Task {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tasks
}

// Jobs returns the raw job records from the last refresh.
func (e *Engine) Jobs() []Job {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.jobs
}

// Leads returns the raw lead records from the last refresh.
func (e *Engine) Leads() []Lead {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.leads
}

// SkillMastery returns the raw skill-mastery document from the last
// refresh, or nil when milestones are filtered out or the document does
// not exist.
func (e *Engine) SkillMastery() *SkillMastery {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mastery
}
