// Package normalize converts raw domain records into calendar items.
// Every function here is pure: no I/O, no clock, no mutation of input.
package normalize

import (
	"fmt"
	"strings"
	"time"

	"github.com/lifedash/lifedash-go/internal/types"
)

const dateLayout = "2006-01-02"

// DateKey truncates any date-bearing string to its 10-character
// YYYY-MM-DD key. Source timestamps come in several shapes
// ("2024-03-01", "2024-03-01T14:30:00Z", "2024-03-01 14:30"); only the
// date part ever reaches a calendar item. Returns ok=false for empty or
// unparseable input, which callers treat as "no date, exclude the item".
func DateKey(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	if i := strings.IndexByte(raw, 'T'); i >= 0 {
		raw = raw[:i]
	}
	if len(raw) > len(dateLayout) {
		raw = raw[:len(dateLayout)]
	}
	if _, err := time.Parse(dateLayout, raw); err != nil {
		return "", false
	}
	return raw, true
}

// TimeKey formats a time.Time as the same 10-character key.
func TimeKey(t time.Time) string {
	return t.Format(dateLayout)
}

// ContentItems projects content entries onto the calendar. Entries
// without a scheduled date are silently excluded.
func ContentItems(contents []types.Content) []types.CalendarItem {
	items := make([]types.CalendarItem, 0, len(contents))
	for _, c := range contents {
		date, ok := DateKey(c.ScheduledDate)
		if !ok {
			continue
		}
		title := c.Title
		if title == "" {
			title = "Untitled"
		}
		items = append(items, types.CalendarItem{
			ID:        c.ID,
			Type:      types.ItemContent,
			Title:     title,
			Date:      date,
			Draggable: true,
			Module:    types.ModuleSchedule,
			Source:    c,
		})
	}
	return items
}

// TaskItems projects tasks onto the calendar, keyed on the date part of
// the due date. Tasks without a due date are excluded.
func TaskItems(tasks []types.Task) []types.CalendarItem {
	items := make([]types.CalendarItem, 0, len(tasks))
	for _, t := range tasks {
		date, ok := DateKey(t.DueDate)
		if !ok {
			continue
		}
		title := t.Title
		if title == "" {
			title = "Untitled Task"
		}
		items = append(items, types.CalendarItem{
			ID:        t.ID,
			Type:      types.ItemTask,
			Title:     title,
			Date:      date,
			Draggable: true,
			Module:    types.ModuleTaskboards,
			Source:    t,
			Priority:  t.Priority,
			BoardID:   t.BoardID,
		})
	}
	return items
}

// InterviewItems fans each job out into one item per interview date.
// IDs are synthesized as {jobId}-interview-{index} so every calendar
// slot maps 1:1 to an entry of the source array. Interview items are
// never draggable: they are externally scheduled, the user does not
// control them from the calendar.
func InterviewItems(jobs []types.Job) []types.CalendarItem {
	var items []types.CalendarItem
	for _, j := range jobs {
		for i, raw := range j.InterviewDates {
			date, ok := DateKey(raw)
			if !ok {
				continue
			}
			title := "Interview"
			if j.Company != "" {
				title = j.Company + " - Interview"
			}
			items = append(items, types.CalendarItem{
				ID:        fmt.Sprintf("%s-interview-%d", j.ID, i),
				Type:      types.ItemInterview,
				Title:     title,
				Date:      date,
				Draggable: false,
				Module:    types.ModuleJobs,
				Source:    j,
				JobID:     j.ID,
			})
		}
	}
	return items
}

// LeadItems projects leads with a follow-up date onto the calendar.
func LeadItems(leads []types.Lead) []types.CalendarItem {
	items := make([]types.CalendarItem, 0, len(leads))
	for _, l := range leads {
		date, ok := DateKey(l.FollowUpDate)
		if !ok {
			continue
		}
		who := l.Name
		if who == "" {
			who = l.ContactPerson
		}
		if who == "" {
			who = "Lead"
		}
		items = append(items, types.CalendarItem{
			ID:        l.ID,
			Type:      types.ItemLead,
			Title:     "Follow up: " + who,
			Date:      date,
			Draggable: true,
			Module:    types.ModuleLeads,
			Source:    l,
		})
	}
	return items
}

// MilestoneItems walks every path of the skill-mastery document and
// projects incomplete milestones with a target date. Completed
// milestones never appear on the calendar.
func MilestoneItems(doc types.SkillMastery) []types.CalendarItem {
	var items []types.CalendarItem
	for _, p := range doc.Paths {
		for _, m := range p.Milestones {
			if m.Completed {
				continue
			}
			date, ok := DateKey(m.TargetDate)
			if !ok {
				continue
			}
			items = append(items, types.CalendarItem{
				ID:        m.ID,
				Type:      types.ItemMilestone,
				Title:     strings.TrimSpace(p.Icon + " " + m.Title),
				Date:      date,
				Draggable: true,
				Module:    types.ModuleSkillMastery,
				Source:    types.MilestoneSource{Milestone: m, Path: p},
				PathID:    p.ID,
				PathName:  p.Name,
			})
		}
	}
	return items
}
