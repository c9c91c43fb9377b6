package normalize

import (
	"strings"

	"planview/internal/model"
	"planview/internal/parser"
)

// The normalizers in this file are pure projections from raw export rows to
// the typed model. Shared policy: rows scoped to another project are dropped,
// rows missing a required field are dropped, source order is preserved, and
// nothing here ever returns an error — malformed input just shrinks the
// output.

// sentinel project used when no project file was loaded. Downstream scoping
// against id "0" naturally yields empty collections.
const (
	SentinelProjectID   = "0"
	SentinelProjectName = "Error: Please upload files first"
)

// required fields that must survive a whitespace trim
func trimmed(row parser.Row, field string) bool {
	return strings.TrimSpace(row[field]) != ""
}

// required fields that only need to be present and non-empty
func present(row parser.Row, field string) bool {
	return row[field] != ""
}

// Project takes the first project row as the active project. An absent or
// empty file yields the sentinel project instead of an error.
func Project(rows []parser.Row) model.Project {
	if len(rows) == 0 {
		return model.Project{ID: SentinelProjectID, Name: SentinelProjectName}
	}
	return model.Project{ID: rows[0]["ProjectId"], Name: rows[0]["Name"]}
}

// Boards keeps rows with a non-blank name and board id.
func Boards(rows []parser.Row, projectID string) []model.Board {
	boards := []model.Board{}
	for _, row := range rows {
		if row["ProjectId"] != projectID || !trimmed(row, "Name") || !trimmed(row, "BoardId") {
			continue
		}
		boards = append(boards, model.Board{
			ID:          row["BoardId"],
			Name:        row["Name"],
			MilestoneID: row["MilestoneId"],
		})
	}
	return boards
}

// Stages keeps rows with a non-blank name.
func Stages(rows []parser.Row, projectID string) []model.Stage {
	stages := []model.Stage{}
	for _, row := range rows {
		if row["ProjectId"] != projectID || !trimmed(row, "Name") {
			continue
		}
		stages = append(stages, model.Stage{
			ID:     row["StageId"],
			Name:   row["Name"],
			Status: row["Status"],
		})
	}
	return stages
}

// WorkItems is additionally scoped to the board behind the active tab. An
// out-of-range tab, or a board without an id, yields an empty slice rather
// than a fault.
func WorkItems(rows []parser.Row, projectID string, boards []model.Board, activeTab int) []model.WorkItem {
	if activeTab < 0 || activeTab >= len(boards) || boards[activeTab].ID == "" {
		return []model.WorkItem{}
	}
	boardID := boards[activeTab].ID
	items := []model.WorkItem{}
	for _, row := range rows {
		if row["ProjectId"] != projectID || row["BoardId"] != boardID || !trimmed(row, "StageId") {
			continue
		}
		items = append(items, model.WorkItem{
			ID:          row["WorkItemId"],
			Title:       row["Title"],
			Description: row["Description"],
			Importance:  row["ImportanceLevelId"],
			StageID:     row["StageId"],
			BoardID:     row["BoardId"],
			CreatorUser: row["CreatorUserId"],
		})
	}
	return items
}

// ImportanceLevels keeps rows with an id and a non-blank name.
func ImportanceLevels(rows []parser.Row, projectID string) []model.Importance {
	levels := []model.Importance{}
	for _, row := range rows {
		if row["ProjectId"] != projectID || !present(row, "ImportanceLevelId") || !trimmed(row, "Name") {
			continue
		}
		levels = append(levels, model.Importance{
			ID:   row["ImportanceLevelId"],
			Name: row["Name"],
		})
	}
	return levels
}

// Milestones keeps rows with an id and a non-blank name.
func Milestones(rows []parser.Row, projectID string) []model.Milestone {
	milestones := []model.Milestone{}
	for _, row := range rows {
		if row["ProjectId"] != projectID || !present(row, "MilestoneId") || !trimmed(row, "Name") {
			continue
		}
		milestones = append(milestones, model.Milestone{
			ID:   row["MilestoneId"],
			Name: row["Name"],
		})
	}
	return milestones
}

// Tags maps the source "TagName" onto the internal name.
func Tags(rows []parser.Row, projectID string) []model.Tag {
	tags := []model.Tag{}
	for _, row := range rows {
		if row["ProjectId"] != projectID || !present(row, "WorkItemId") || !present(row, "TagName") {
			continue
		}
		tags = append(tags, model.Tag{
			WorkItemID: row["WorkItemId"],
			Name:       row["TagName"],
		})
	}
	return tags
}

// Users maps the source "FullName" onto the internal name.
func Users(rows []parser.Row, projectID string) []model.User {
	users := []model.User{}
	for _, row := range rows {
		if row["ProjectId"] != projectID || !present(row, "UserId") || !present(row, "FullName") {
			continue
		}
		users = append(users, model.User{
			ID:   row["UserId"],
			Name: row["FullName"],
		})
	}
	return users
}

// WorkItemUsers keeps assignment rows carrying both ids.
func WorkItemUsers(rows []parser.Row, projectID string) []model.WorkItemUser {
	links := []model.WorkItemUser{}
	for _, row := range rows {
		if row["ProjectId"] != projectID || !present(row, "WorkItemId") || !present(row, "UserId") {
			continue
		}
		links = append(links, model.WorkItemUser{
			WorkItemID: row["WorkItemId"],
			UserID:     row["UserId"],
		})
	}
	return links
}

// Subtasks keeps rows carrying a work item id and a completion flag. Only the
// exact literal "True" counts as completed; "False" or anything else is
// incomplete.
func Subtasks(rows []parser.Row, projectID string) []model.Subtask {
	subtasks := []model.Subtask{}
	for _, row := range rows {
		if row["ProjectId"] != projectID || !present(row, "WorkItemId") || !present(row, "IsCompleted") {
			continue
		}
		subtasks = append(subtasks, model.Subtask{
			WorkItemID:  row["WorkItemId"],
			Title:       row["Title"],
			IsCompleted: row["IsCompleted"] == "True",
		})
	}
	return subtasks
}
