package model

// Subtask is a checklist entry owned by a work item. IsCompleted is true only
// when the export carried the literal string "True".
type Subtask struct {
	WorkItemID  string `json:"work_item_id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"is_completed"`
}
