package normalize

import (
	"planview/internal/model"
	"planview/internal/parser"
)

// Dataset is one immutable, cross-referenced snapshot of an export. It is
// rebuilt from the raw file set whenever the input changes; consumers only
// read it.
type Dataset struct {
	Project       model.Project
	Boards        []model.Board
	Stages        []model.Stage
	Importance    []model.Importance
	Milestones    []model.Milestone
	Tags          []model.Tag
	Users         []model.User
	WorkItemUsers []model.WorkItemUser
	Subtasks      []model.Subtask

	// work item rows stay raw here because their normalization depends on
	// which board tab is active
	workItemRows []parser.Row
}

// Build runs every project-scoped normalizer over the parsed file set.
func Build(files parser.FileSet) *Dataset {
	project := Project(files[parser.RoleProject])
	return &Dataset{
		Project:       project,
		Boards:        Boards(files[parser.RoleBoards], project.ID),
		Stages:        Stages(files[parser.RoleStages], project.ID),
		Importance:    ImportanceLevels(files[parser.RoleImportance], project.ID),
		Milestones:    Milestones(files[parser.RoleMilestones], project.ID),
		Tags:          Tags(files[parser.RoleTags], project.ID),
		Users:         Users(files[parser.RoleUsers], project.ID),
		WorkItemUsers: WorkItemUsers(files[parser.RoleWorkItemUsers], project.ID),
		Subtasks:      Subtasks(files[parser.RoleSubtasks], project.ID),
		workItemRows:  files[parser.RoleWorkItems],
	}
}

// WorkItems normalizes the work item rows scoped to the board behind the
// given tab index.
func (d *Dataset) WorkItems(activeTab int) []model.WorkItem {
	return WorkItems(d.workItemRows, d.Project.ID, d.Boards, activeTab)
}
