package model

// User is a project member from the imported export. Not to be confused with
// Account, which is the login identity of whoever uploaded the export.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
