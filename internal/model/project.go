package model

// Project is the root scope for every other imported entity. Exactly one
// project is active per loaded export; when no project file is present the
// sentinel project (see normalize.Project) takes its place.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
