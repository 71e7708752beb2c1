package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifedash/lifedash-go/internal/types"
)

func TestDateKeyTruncatesTimestamps(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-03-01", "2024-03-01", true},
		{"2024-03-01T14:30:00Z", "2024-03-01", true},
		{"2024-03-01T00:00:00.000Z", "2024-03-01", true},
		{"2024-03-01 14:30", "2024-03-01", true},
		{"", "", false},
		{"not-a-date", "", false},
		{"2024-13-40", "", false},
	}
	for _, c := range cases {
		got, ok := DateKey(c.in)
		assert.Equal(t, c.ok, ok, "DateKey(%q) ok", c.in)
		assert.Equal(t, c.want, got, "DateKey(%q)", c.in)
		if ok {
			assert.Len(t, got, 10, "date keys are always 10 chars")
		}
	}
}

func TestContentItemsFallbackTitleAndExclusion(t *testing.T) {
	items := ContentItems([]types.Content{
		{ID: "c1", Title: "Launch post", ScheduledDate: "2024-03-01T14:30:00Z"},
		{ID: "c2", ScheduledDate: "2024-03-02"},
		{ID: "c3", Title: "No date yet"},
	})
	require.Len(t, items, 2)
	assert.Equal(t, "2024-03-01", items[0].Date)
	assert.Equal(t, "Launch post", items[0].Title)
	assert.Equal(t, "Untitled", items[1].Title)
	assert.Equal(t, types.ModuleSchedule, items[0].Module)
	assert.True(t, items[0].Draggable)
}

func TestTaskItemsExcludeMissingDueDate(t *testing.T) {
	items := TaskItems([]types.Task{
		{ID: "t1", Title: "Write report", DueDate: "2024-05-01T09:00:00Z", Priority: "high", BoardID: "b1"},
		{ID: "t2", Title: "No due date"},
		{ID: "t3", DueDate: "2024-05-02"},
	})
	require.Len(t, items, 2)
	assert.Equal(t, "2024-05-01", items[0].Date)
	assert.Equal(t, "high", items[0].Priority)
	assert.Equal(t, "b1", items[0].BoardID)
	assert.Equal(t, "Untitled Task", items[1].Title)
}

func TestInterviewItemsFanOut(t *testing.T) {
	items := InterviewItems([]types.Job{
		{ID: "j1", Company: "Acme", InterviewDates: []string{"2024-01-01", "2024-02-01"}},
		{ID: "j2", Company: "NoDates"},
	})
	require.Len(t, items, 2)
	assert.Equal(t, "j1-interview-0", items[0].ID)
	assert.Equal(t, "j1-interview-1", items[1].ID)
	assert.Equal(t, "Acme - Interview", items[0].Title)
	assert.Equal(t, "j1", items[0].JobID)
	for _, it := range items {
		assert.False(t, it.Draggable, "interview items are never draggable")
		assert.Equal(t, types.ItemInterview, it.Type)
	}
}

func TestLeadItemsTitleFallbackChain(t *testing.T) {
	items := LeadItems([]types.Lead{
		{ID: "l1", Name: "Globex", FollowUpDate: "2024-05-01"},
		{ID: "l2", ContactPerson: "Jane", FollowUpDate: "2024-05-02"},
		{ID: "l3", FollowUpDate: "2024-05-03"},
		{ID: "l4", Name: "No follow-up"},
	})
	require.Len(t, items, 3)
	assert.Equal(t, "Follow up: Globex", items[0].Title)
	assert.Equal(t, "Follow up: Jane", items[1].Title)
	assert.Equal(t, "Follow up: Lead", items[2].Title)
}

func TestMilestoneItemsSkipCompletedAndUndated(t *testing.T) {
	doc := types.SkillMastery{Paths: []types.SkillPath{
		{
			ID:   "p1",
			Name: "Go",
			Icon: "🐹",
			Milestones: []types.Milestone{
				{ID: "m1", Title: "Finish course", TargetDate: "2024-06-01"},
				{ID: "m2", Title: "Done already", TargetDate: "2024-06-02", Completed: true},
				{ID: "m3", Title: "No target"},
			},
		},
	}}
	items := MilestoneItems(doc)
	require.Len(t, items, 1)
	it := items[0]
	assert.Equal(t, "m1", it.ID)
	assert.Equal(t, "🐹 Finish course", it.Title)
	assert.Equal(t, "p1", it.PathID)
	assert.Equal(t, "Go", it.PathName)
	src, ok := it.Source.(types.MilestoneSource)
	require.True(t, ok)
	assert.Equal(t, "m1", src.Milestone.ID)
	assert.Equal(t, "p1", src.Path.ID)
}

func TestMilestoneTitleWithoutIcon(t *testing.T) {
	doc := types.SkillMastery{Paths: []types.SkillPath{
		{ID: "p1", Name: "Rust", Milestones: []types.Milestone{
			{ID: "m1", Title: "Read the book", TargetDate: "2024-07-01"},
		}},
	}}
	items := MilestoneItems(doc)
	require.Len(t, items, 1)
	assert.Equal(t, "Read the book", items[0].Title)
}
