package model

// WorkItemUser is the many-to-many join between work items and assigned users.
type WorkItemUser struct {
	WorkItemID string `json:"work_item_id"`
	UserID     string `json:"user_id"`
}
