package model

// Tag links a tag name to a work item. A work item may carry zero or many.
type Tag struct {
	WorkItemID string `json:"work_item_id"`
	Name       string `json:"name"`
}
