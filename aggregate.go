package calendar

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lifedash/lifedash-go/internal/api"
	"github.com/lifedash/lifedash-go/internal/normalize"
	"github.com/lifedash/lifedash-go/internal/types"
)

func dateKey(s string) (string, bool) { return normalize.DateKey(s) }
func timeKey(t time.Time) string      { return normalize.TimeKey(t) }

// Refetch reloads every enabled domain and rebuilds the aggregate.
// Fetches fan out concurrently and are awaited jointly; none is
// cancelled when a sibling fails, so a partial failure leaves each
// successfully fetched domain fresh and every failed one at its
// last-known value. Disabled domains issue no request and have their
// state slice cleared. The loading flag is reset on every path out.
//
// With no authenticated user the call is a no-op.
func (e *Engine) Refetch(ctx context.Context) error {
	if e.userID == "" {
		return nil
	}

	e.mu.Lock()
	filters := e.filters
	e.loading = true
	e.mu.Unlock()

	log := e.log.With().Str("refresh_id", uuid.NewString()).Logger()

	var (
		g errgroup.Group

		contents []types.Content
		tasks    []types.Task
		jobs     []types.Job
		leads    []types.Lead
		mastery  *types.SkillMastery

		contentsOK, tasksOK, jobsOK, leadsOK, masteryOK bool
	)

	fetch := func(domain string, run func() error, ok *bool) {
		g.Go(func() error {
			refreshesTotal.WithLabelValues(domain).Inc()
			if err := run(); err != nil {
				refreshFailuresTotal.WithLabelValues(domain).Inc()
				log.Error().Err(err).Str("domain", domain).Msg("fetch failed")
				return err
			}
			*ok = true
			return nil
		})
	}

	if filters.Contents {
		fetch("contents", func() (err error) {
			contents, err = api.ListContents(ctx, e.http, e.baseURL)
			return err
		}, &contentsOK)
	}
	if filters.Tasks {
		fetch("tasks", func() (err error) {
			tasks, err = api.ListTasks(ctx, e.http, e.baseURL)
			return err
		}, &tasksOK)
	}
	if filters.Jobs {
		fetch("jobs", func() (err error) {
			jobs, err = api.ListJobs(ctx, e.http, e.baseURL)
			return err
		}, &jobsOK)
	}
	if filters.Leads {
		fetch("leads", func() (err error) {
			leads, err = api.ListLeads(ctx, e.http, e.baseURL)
			return err
		}, &leadsOK)
	}
	if filters.Milestones {
		fetch("skillMastery", func() (err error) {
			mastery, err = api.GetSkillMastery(ctx, e.http, e.baseURL)
			if errors.Is(err, types.ErrNotFound) {
				// Document never provisioned: an empty calendar, not a failure.
				mastery, err = nil, nil
			}
			return err
		}, &masteryOK)
	}

	err := g.Wait()

	e.mu.Lock()
	defer e.mu.Unlock()
	e.loading = false

	// Successful fetches land, failed ones keep last-known values,
	// disabled domains are cleared outright.
	switch {
	case contentsOK:
		e.contents = contents
	case !filters.Contents:
		e.contents = nil
	}
	switch {
	case tasksOK:
		e.tasks = tasks
	case !filters.Tasks:
		e.tasks = nil
	}
	switch {
	case jobsOK:
		e.jobs = jobs
	case !filters.Jobs:
		e.jobs = nil
	}
	switch {
	case leadsOK:
		e.leads = leads
	case !filters.Leads:
		e.leads = nil
	}
	switch {
	case masteryOK:
		e.mastery = mastery
	case !filters.Milestones:
		e.mastery = nil
	}

	e.rebuildLocked()

	if err != nil {
		return err
	}
	log.Debug().Int("items", len(e.items)).Msg("refresh complete")
	return nil
}

// rebuildLocked recomputes the aggregate from the raw collections.
// Insertion order is domain-priority order; it determines how stacked
// day cells render, so it is part of the contract. Caller holds e.mu.
func (e *Engine) rebuildLocked() {
	var items []types.CalendarItem
	if e.filters.Contents {
		items = append(items, normalize.ContentItems(e.contents)...)
	}
	if e.filters.Tasks {
		items = append(items, normalize.TaskItems(e.tasks)...)
	}
	if e.filters.Jobs {
		items = append(items, normalize.InterviewItems(e.jobs)...)
	}
	if e.filters.Leads {
		items = append(items, normalize.LeadItems(e.leads)...)
	}
	if e.filters.Milestones && e.mastery != nil {
		items = append(items, normalize.MilestoneItems(*e.mastery)...)
	}
	e.items = items
}
