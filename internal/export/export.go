// Package export rebuilds the filtered, cross-referenced dataset into the
// nested board -> stage -> item document and its flat CSV form.
package export

import (
	"strings"

	"planview/internal/lookup"
	"planview/internal/model"
)

// SubtaskEntry summarizes a subtask with its completion flag spelled the way
// the source system does ("True" / "False").
type SubtaskEntry struct {
	Title    string `json:"title"`
	Complete string `json:"complete"`
}

// ItemEntry is one fully resolved work item in the export document.
type ItemEntry struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Importance  string         `json:"importance"`
	Tags        []string       `json:"tags"`
	Subtasks    []SubtaskEntry `json:"subtasks"`
	Users       []string       `json:"users"`
	CreatorUser string         `json:"creatorUser"`
}

type StageEntry struct {
	Stage string      `json:"stage"`
	Items []ItemEntry `json:"items"`
}

type BoardEntry struct {
	Board  string       `json:"board"`
	Stages []StageEntry `json:"stages"`
}

// Boards assembles the nested structure: for each board, for each stage, the
// items of that stage restricted to that board's own item set, each expanded
// with resolved names. An empty dataset yields a well-formed empty slice.
func Boards(
	boards []model.Board,
	stages []model.Stage,
	items []model.WorkItem,
	tags []model.Tag,
	subtasks []model.Subtask,
	workItemUsers []model.WorkItemUser,
	users []model.User,
	levels []model.Importance,
) []BoardEntry {
	entries := []BoardEntry{}
	for _, board := range boards {
		stageEntries := []StageEntry{}
		for _, stage := range stages {
			itemEntries := []ItemEntry{}
			for _, item := range items {
				if item.BoardID != board.ID || item.StageID != stage.ID {
					continue
				}
				itemEntries = append(itemEntries, expand(item, tags, subtasks, workItemUsers, users, levels))
			}
			stageEntries = append(stageEntries, StageEntry{Stage: stage.Name, Items: itemEntries})
		}
		entries = append(entries, BoardEntry{Board: board.Name, Stages: stageEntries})
	}
	return entries
}

func expand(
	item model.WorkItem,
	tags []model.Tag,
	subtasks []model.Subtask,
	workItemUsers []model.WorkItemUser,
	users []model.User,
	levels []model.Importance,
) ItemEntry {
	subtaskEntries := []SubtaskEntry{}
	for _, s := range lookup.SubtasksFor(subtasks, item.ID) {
		complete := "False"
		if s.IsCompleted {
			complete = "True"
		}
		subtaskEntries = append(subtaskEntries, SubtaskEntry{Title: s.Title, Complete: complete})
	}

	// unresolved assignees are dropped here, unlike the board view which
	// renders them blank
	assignees := []string{}
	for _, name := range lookup.AssigneeNames(workItemUsers, users, item.ID) {
		if name != "" {
			assignees = append(assignees, name)
		}
	}

	return ItemEntry{
		Title:       item.ID + " - " + item.Title,
		Description: item.Description,
		Importance:  lookup.ImportanceName(levels, item.Importance, lookup.ImportanceFallbackExport),
		Tags:        lookup.TagNames(tags, item.ID),
		Subtasks:    subtaskEntries,
		Users:       assignees,
		CreatorUser: lookup.UserName(users, item.CreatorUser),
	}
}

// Document wraps the assembled boards under the project name, matching the
// downloadable JSON shape.
func Document(project model.Project, boards []BoardEntry) map[string][]BoardEntry {
	return map[string][]BoardEntry{project.Name: boards}
}

var csvHeader = []string{
	"Board", "Stage", "Title", "Description", "Importance",
	"CreatorUser", "Tags", "Subtasks", "Users",
}

// CSV flattens the assembled boards into tabular form: one row per item.
// Embedded newlines in descriptions become spaces before escaping.
func CSV(boards []BoardEntry) string {
	rows := []string{strings.Join(csvHeader, ",")}
	for _, board := range boards {
		for _, stage := range board.Stages {
			for _, item := range stage.Items {
				subtasks := make([]string, 0, len(item.Subtasks))
				for _, s := range item.Subtasks {
					subtasks = append(subtasks, s.Title+" ("+s.Complete+")")
				}
				fields := []string{
					board.Board,
					stage.Stage,
					item.Title,
					strings.ReplaceAll(item.Description, "\n", " "),
					item.Importance,
					item.CreatorUser,
					strings.Join(item.Tags, ";"),
					strings.Join(subtasks, "; "),
					strings.Join(item.Users, ";"),
				}
				for i, field := range fields {
					fields[i] = escape(field)
				}
				rows = append(rows, strings.Join(fields, ","))
			}
		}
	}
	return strings.Join(rows, "\n")
}

// escape applies standard CSV quoting per field: fields containing a comma,
// double quote or newline are wrapped in double quotes with inner quotes
// doubled.
func escape(field string) string {
	if strings.ContainsAny(field, ",\"\n") {
		return "\"" + strings.ReplaceAll(field, "\"", "\"\"") + "\""
	}
	return field
}
