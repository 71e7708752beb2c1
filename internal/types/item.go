package types

// ItemType discriminates the calendar item kinds. It controls
// normalization, draggability, and reschedule routing.
type ItemType string

const (
	ItemContent   ItemType = "content"
	ItemTask      ItemType = "task"
	ItemInterview ItemType = "interview"
	ItemLead      ItemType = "lead"
	ItemMilestone ItemType = "milestone"
)

// Module names the feature area that owns an item. Consumers use it to
// route clicks to the right view; the engine never branches on it.
type Module string

const (
	ModuleSchedule     Module = "schedule"
	ModuleTaskboards   Module = "taskboards"
	ModuleJobs         Module = "jobs"
	ModuleLeads        Module = "leads"
	ModuleSkillMastery Module = "skillmastery"
)

// CalendarItem is the normalized, date-keyed projection of a domain
// record. Items are derived, never persisted: the aggregate is rebuilt
// from the raw collections on every refresh.
type CalendarItem struct {
	ID        string   `json:"id"`
	Type      ItemType `json:"type"`
	Title     string   `json:"title"`
	Date      string   `json:"date"` // always exactly YYYY-MM-DD, never a time
	Draggable bool     `json:"draggable"`
	Module    Module   `json:"module"`

	// Source is the original, unmodified domain record. For milestone
	// items it is a MilestoneSource, since a milestone has no standalone
	// record of its own.
	Source any `json:"sourceData,omitempty"`

	Priority string `json:"priority,omitempty"` // tasks
	BoardID  string `json:"boardId,omitempty"`  // tasks
	JobID    string `json:"jobId,omitempty"`    // interviews
	PathID   string `json:"pathId,omitempty"`   // milestones
	PathName string `json:"pathName,omitempty"` // milestones
}

// MilestoneSource pairs a milestone with its owning path so consumers
// can navigate back into the skill-mastery view.
type MilestoneSource struct {
	Milestone Milestone `json:"milestone"`
	Path      SkillPath `json:"path"`
}
