package model

// Stage is a status column within a project ("Todo", "Done", ...).
type Stage struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
