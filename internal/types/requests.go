package types

// ------------------------------
// Write payloads
// ------------------------------

// ContentPatch reschedules a content entry.
type ContentPatch struct {
	ScheduledDate string `json:"scheduledDate"`
}

// TaskPatch reschedules a task. The backend stores due dates as full
// timestamps, so the date is sent with a midnight-UTC time component.
type TaskPatch struct {
	DueDate string `json:"dueDate"`
}

// LeadPatch reschedules a lead follow-up.
type LeadPatch struct {
	FollowUpDate string `json:"followUpDate"`
}
