// Package lookup holds the stateless cross-reference helpers used by both
// the board view and the exporters. Every helper tolerates a dangling id.
package lookup

import "planview/internal/model"

// Importance fallbacks differ on purpose between the two consumers: the board
// view renders unresolved levels as "Normal", the export emits "Unknown".
const (
	ImportanceFallbackView   = "Normal"
	ImportanceFallbackExport = "Unknown"
)

// UserName resolves a user id to a display name, or "" when absent.
func UserName(users []model.User, id string) string {
	for _, u := range users {
		if u.ID == id {
			return u.Name
		}
	}
	return ""
}

// ImportanceName resolves an importance id to its label, or the caller's
// fallback when absent.
func ImportanceName(levels []model.Importance, id, fallback string) string {
	for _, l := range levels {
		if l.ID == id {
			return l.Name
		}
	}
	return fallback
}

// MilestoneName resolves a milestone id to its name, or "" when absent.
func MilestoneName(milestones []model.Milestone, id string) string {
	for _, m := range milestones {
		if m.ID == id {
			return m.Name
		}
	}
	return ""
}

// TagNames collects the tag names of a work item in discovery order.
func TagNames(tags []model.Tag, workItemID string) []string {
	names := []string{}
	for _, t := range tags {
		if t.WorkItemID == workItemID {
			names = append(names, t.Name)
		}
	}
	return names
}

// SubtasksFor collects the subtasks of a work item in discovery order.
func SubtasksFor(subtasks []model.Subtask, workItemID string) []model.Subtask {
	owned := []model.Subtask{}
	for _, s := range subtasks {
		if s.WorkItemID == workItemID {
			owned = append(owned, s)
		}
	}
	return owned
}

// AssigneeNames resolves the assigned users of a work item. An assignment
// pointing at an unknown user resolves to "" and is kept; the export path
// drops the empties itself.
func AssigneeNames(links []model.WorkItemUser, users []model.User, workItemID string) []string {
	names := []string{}
	for _, l := range links {
		if l.WorkItemID == workItemID {
			names = append(names, UserName(users, l.UserID))
		}
	}
	return names
}

// CardsForStage returns the work items sitting in the given stage.
func CardsForStage(items []model.WorkItem, stageID string) []model.WorkItem {
	cards := []model.WorkItem{}
	for _, item := range items {
		if item.StageID == stageID {
			cards = append(cards, item)
		}
	}
	return cards
}
