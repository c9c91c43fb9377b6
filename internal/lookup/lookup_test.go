package lookup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"planview/internal/lookup"
	"planview/internal/model"
)

var users = []model.User{
	{ID: "U1", Name: "Ada"},
	{ID: "U2", Name: "Grace"},
}

func TestUserName(t *testing.T) {
	assert.Equal(t, "Ada", lookup.UserName(users, "U1"))
	assert.Equal(t, "", lookup.UserName(users, "U9"))
}

func TestImportanceName_CallerFallback(t *testing.T) {
	levels := []model.Importance{{ID: "I1", Name: "High"}}

	assert.Equal(t, "High", lookup.ImportanceName(levels, "I1", lookup.ImportanceFallbackView))
	// the two consumers disagree on the fallback, on purpose
	assert.Equal(t, "Normal", lookup.ImportanceName(levels, "I9", lookup.ImportanceFallbackView))
	assert.Equal(t, "Unknown", lookup.ImportanceName(levels, "I9", lookup.ImportanceFallbackExport))
}

func TestTagNames_DiscoveryOrder(t *testing.T) {
	tags := []model.Tag{
		{WorkItemID: "W1", Name: "bug"},
		{WorkItemID: "W2", Name: "art"},
		{WorkItemID: "W1", Name: "audio"},
	}

	assert.Equal(t, []string{"bug", "audio"}, lookup.TagNames(tags, "W1"))
	assert.Empty(t, lookup.TagNames(tags, "W9"))
}

func TestSubtasksFor(t *testing.T) {
	subtasks := []model.Subtask{
		{WorkItemID: "W1", Title: "a", IsCompleted: true},
		{WorkItemID: "W2", Title: "b"},
		{WorkItemID: "W1", Title: "c"},
	}

	owned := lookup.SubtasksFor(subtasks, "W1")

	assert.Len(t, owned, 2)
	assert.Equal(t, "a", owned[0].Title)
	assert.Equal(t, "c", owned[1].Title)
}

func TestAssigneeNames_KeepsUnresolvedAsBlank(t *testing.T) {
	links := []model.WorkItemUser{
		{WorkItemID: "W1", UserID: "U1"},
		{WorkItemID: "W1", UserID: "U9"},
		{WorkItemID: "W2", UserID: "U2"},
	}

	names := lookup.AssigneeNames(links, users, "W1")

	assert.Equal(t, []string{"Ada", ""}, names)
}

func TestCardsForStage(t *testing.T) {
	items := []model.WorkItem{
		{ID: "W1", StageID: "S1"},
		{ID: "W2", StageID: "S2"},
		{ID: "W3", StageID: "S1"},
	}

	cards := lookup.CardsForStage(items, "S1")

	assert.Len(t, cards, 2)
	assert.Equal(t, "W1", cards[0].ID)
	assert.Equal(t, "W3", cards[1].ID)
}

func TestMilestoneName(t *testing.T) {
	milestones := []model.Milestone{{ID: "M1", Name: "Alpha"}}

	assert.Equal(t, "Alpha", lookup.MilestoneName(milestones, "M1"))
	assert.Equal(t, "", lookup.MilestoneName(milestones, "M2"))
}
