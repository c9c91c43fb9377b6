package model

// WorkItem is a single card tracked within a board and stage. Importance and
// CreatorUser hold raw ids from the export; resolving them to display names
// is the lookup package's job.
type WorkItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Importance  string `json:"importance"`
	StageID     string `json:"stage_id"`
	BoardID     string `json:"board_id"`
	CreatorUser string `json:"creator_user"`
}
