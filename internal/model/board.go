package model

// Board is a named grouping of stages and work items, rendered as a
// selectable tab. MilestoneID is optional and may reference a milestone
// that was never imported.
type Board struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MilestoneID string `json:"milestone_id"`
}
