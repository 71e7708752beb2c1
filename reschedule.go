package calendar

import (
	"context"
	"time"

	"github.com/lifedash/lifedash-go/internal/api"
	"github.com/lifedash/lifedash-go/internal/types"
)

// Reschedule persists a new date for item and reconciles local state.
// The write is routed on the item type; each type persists differently
// (flat PATCH for contents, tasks, and leads; whole-document rewrite
// for milestones). Local state is mutated only after the server
// confirms, so a failed call leaves the engine exactly as it was.
//
// Returns true on success. Interview items are rejected outright: they
// are not draggable and have no write path. Failures are logged, never
// propagated.
func (e *Engine) Reschedule(ctx context.Context, item CalendarItem, newDate string) bool {
	key, ok := dateKey(newDate)
	if !ok {
		e.log.Warn().Str("item_id", item.ID).Str("date", newDate).Msg("reschedule: unusable date")
		reschedulesTotal.WithLabelValues(string(item.Type), "rejected").Inc()
		return false
	}

	var done bool
	switch item.Type {
	case types.ItemContent:
		done = e.rescheduleContent(ctx, item.ID, key)
	case types.ItemTask:
		done = e.rescheduleTask(ctx, item.ID, key)
	case types.ItemLead:
		done = e.rescheduleLead(ctx, item.ID, key)
	case types.ItemMilestone:
		done = e.rescheduleMilestone(ctx, item.ID, key)
	case types.ItemInterview:
		e.log.Warn().Str("item_id", item.ID).Msg("reschedule: interview items are not draggable")
		reschedulesTotal.WithLabelValues(string(item.Type), "rejected").Inc()
		return false
	default:
		e.log.Warn().Str("item_id", item.ID).Str("type", string(item.Type)).Msg("reschedule: unknown item type")
		reschedulesTotal.WithLabelValues(string(item.Type), "rejected").Inc()
		return false
	}

	outcome := "failure"
	if done {
		outcome = "success"
	}
	reschedulesTotal.WithLabelValues(string(item.Type), outcome).Inc()
	return done
}

// RescheduleAt is Reschedule for callers holding a time.Time.
func (e *Engine) RescheduleAt(ctx context.Context, item CalendarItem, t time.Time) bool {
	return e.Reschedule(ctx, item, timeKey(t))
}

func (e *Engine) rescheduleContent(ctx context.Context, id, date string) bool {
	updated, err := api.PatchContent(ctx, e.http, e.baseURL, id, types.ContentPatch{ScheduledDate: date})
	if err != nil {
		e.log.Error().Err(err).Str("content_id", id).Msg("reschedule content failed")
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.contents {
		if e.contents[i].ID == id {
			e.contents[i] = *updated
			break
		}
	}
	e.rebuildLocked()
	return true
}

func (e *Engine) rescheduleTask(ctx context.Context, id, date string) bool {
	// Due dates are stored as full timestamps; pin the moved task to
	// midnight UTC on the target day.
	updated, err := api.PatchTask(ctx, e.http, e.baseURL, id, types.TaskPatch{DueDate: date + "T00:00:00Z"})
	if err != nil {
		e.log.Error().Err(err).Str("task_id", id).Msg("reschedule task failed")
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.tasks {
		if e.tasks[i].ID == id {
			e.tasks[i] = *updated
			break
		}
	}
	e.rebuildLocked()
	return true
}

func (e *Engine) rescheduleLead(ctx context.Context, id, date string) bool {
	updated, err := api.PatchLead(ctx, e.http, e.baseURL, id, types.LeadPatch{FollowUpDate: date})
	if err != nil {
		e.log.Error().Err(err).Str("lead_id", id).Msg("reschedule lead failed")
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.leads {
		if e.leads[i].ID == id {
			e.leads[i] = *updated
			break
		}
	}
	e.rebuildLocked()
	return true
}

// rescheduleMilestone is the one structurally different case: milestones
// are not addressable records, so moving one means read-modify-write of
// the entire skill-mastery document. The document is shared, global
// state updated by full overwrite, so the freshest copy is fetched
// immediately before composing the patch rather than reusing whatever
// the last refresh stored.
func (e *Engine) rescheduleMilestone(ctx context.Context, id, date string) bool {
	doc, err := api.GetSkillMastery(ctx, e.http, e.baseURL)
	if err != nil {
		e.log.Error().Err(err).Str("milestone_id", id).Msg("reschedule milestone: read failed")
		return false
	}

	patched, found := patchMilestoneDate(*doc, id, date)
	if !found {
		e.log.Warn().Str("milestone_id", id).Msg("reschedule milestone: not in document")
		return false
	}

	saved, err := api.PutSkillMastery(ctx, e.http, e.baseURL, patched)
	if err != nil {
		e.log.Error().Err(err).Str("milestone_id", id).Msg("reschedule milestone: write failed")
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.mastery = saved
	e.rebuildLocked()
	return true
}

// patchMilestoneDate returns a copy of doc with exactly one milestone's
// targetDate rewritten. Every sibling milestone and every path-level
// field is carried over untouched.
func patchMilestoneDate(doc types.SkillMastery, milestoneID, date string) (types.SkillMastery, bool) {
	found := false
	paths := make([]types.SkillPath, len(doc.Paths))
	for i, p := range doc.Paths {
		milestones := make([]types.Milestone, len(p.Milestones))
		copy(milestones, p.Milestones)
		for j := range milestones {
			if milestones[j].ID == milestoneID {
				milestones[j].TargetDate = date
				found = true
			}
		}
		p.Milestones = milestones
		paths[i] = p
	}
	doc.Paths = paths
	return doc, found
}
