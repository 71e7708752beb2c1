package calendar

import "context"

// Filters is the five-boolean configuration controlling which domains
// participate in fetch and normalization. It is the single source of
// truth: a disabled domain is not fetched at all, and its items are
// removed from the aggregate on the next refresh rather than hidden.
type Filters struct {
	Contents   bool
	Tasks      bool
	Jobs       bool
	Leads      bool
	Milestones bool
}

// DefaultFilters enables only the content calendar.
func DefaultFilters() Filters {
	return Filters{Contents: true}
}

// Filters returns the active filter configuration.
func (e *Engine) Filters() Filters {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filters
}

// SetFilters replaces the filter configuration. Any change triggers a
// full refetch of every enabled domain, not just the toggled one;
// toggling a domain off and back on therefore always yields fresh data.
// A no-op assignment does not refetch.
func (e *Engine) SetFilters(ctx context.Context, f Filters) error {
	e.mu.Lock()
	changed := e.filters != f
	e.filters = f
	e.mu.Unlock()

	if !changed {
		return nil
	}
	return e.Refetch(ctx)
}
