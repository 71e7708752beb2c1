package types

// ------------------------------
// Raw domain records
// ------------------------------

// Content is a content-calendar entry (a post, video, article, ...).
type Content struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Platform      string `json:"platform,omitempty"`
	Status        string `json:"status,omitempty"`
	ScheduledDate string `json:"scheduledDate,omitempty"`
}

// Task is a task-board card. DueDate may carry a time component; the
// calendar only ever keys on the date part.
type Task struct {
	ID       string `json:"id"`
	BoardID  string `json:"boardId,omitempty"`
	Title    string `json:"title"`
	Status   string `json:"status,omitempty"`
	Priority string `json:"priority,omitempty"`
	DueDate  string `json:"dueDate,omitempty"`
}

// Job is a job-search application. One job can hold any number of
// scheduled interview dates.
type Job struct {
	ID             string   `json:"id"`
	Company        string   `json:"company"`
	Position       string   `json:"position,omitempty"`
	Status         string   `json:"status,omitempty"`
	InterviewDates []string `json:"interviewDates,omitempty"`
}

// Lead is a CRM lead with an optional follow-up reminder date.
type Lead struct {
	ID            string `json:"id"`
	Name          string `json:"name,omitempty"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Email         string `json:"email,omitempty"`
	Status        string `json:"status,omitempty"`
	FollowUpDate  string `json:"followUpDate,omitempty"`
}

// SkillMastery is the single per-user document holding every skill path.
// Milestones are not addressable on their own; they only exist nested
// inside this aggregate.
type SkillMastery struct {
	Paths []SkillPath `json:"paths"`
}

// SkillPath groups the milestones of one learning track.
type SkillPath struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Icon       string      `json:"icon,omitempty"`
	Milestones []Milestone `json:"milestones,omitempty"`
}

// Milestone is one target inside a skill path.
type Milestone struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	TargetDate string `json:"targetDate,omitempty"`
	Completed  bool   `json:"completed,omitempty"`
}
