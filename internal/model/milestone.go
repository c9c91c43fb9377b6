package model

// Milestone names the delivery target a board is associated with.
type Milestone struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
