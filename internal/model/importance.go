package model

// Importance is a severity label attached to work items.
type Importance struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
