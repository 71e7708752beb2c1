package calendar

import "github.com/lifedash/lifedash-go/internal/types"

// Public type aliases so consumers can import only the calendar package.
type (
	// Normalized calendar surface
	CalendarItem    = types.CalendarItem
	ItemType        = types.ItemType
	Module          = types.Module
	MilestoneSource = types.MilestoneSource

	// Raw domain records
	Content      = types.Content
	Task         = types.Task
	Job          = types.Job
	Lead         = types.Lead
	SkillMastery = types.SkillMastery
	SkillPath    = types.SkillPath
	Milestone    = types.Milestone
)

// Item type discriminants.
const (
	ItemContent   = types.ItemContent
	ItemTask      = types.ItemTask
	ItemInterview = types.ItemInterview
	ItemLead      = types.ItemLead
	ItemMilestone = types.ItemMilestone
)

// Owning feature areas.
const (
	ModuleSchedule     = types.ModuleSchedule
	ModuleTaskboards   = types.ModuleTaskboards
	ModuleJobs         = types.ModuleJobs
	ModuleLeads        = types.ModuleLeads
	ModuleSkillMastery = types.ModuleSkillMastery
)
