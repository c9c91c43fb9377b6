// Package filter computes view subsets of the normalized collections.
// Criteria combine with AND across categories and OR within a category; an
// empty category means "no filter selected", never "exclude all".
package filter

import (
	"planview/internal/lookup"
	"planview/internal/model"
)

// Criteria is the set of active filter selections for work items. Stage
// selection is by id; importance and tags are selected by display name.
type Criteria struct {
	StageIDs        []string
	ImportanceNames []string
	TagNames        []string
}

// Empty reports whether no criterion is selected at all.
func (c Criteria) Empty() bool {
	return len(c.StageIDs) == 0 && len(c.ImportanceNames) == 0 && len(c.TagNames) == 0
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Apply returns the work items matching the criteria. Importance is matched
// against the resolved label (unresolved levels read as "Normal", same as the
// board view shows them). The tag criterion matches an item carrying at least
// one selected tag, via the tag join.
func Apply(items []model.WorkItem, tags []model.Tag, levels []model.Importance, c Criteria) []model.WorkItem {
	matched := []model.WorkItem{}
	for _, item := range items {
		if len(c.StageIDs) > 0 && !contains(c.StageIDs, item.StageID) {
			continue
		}
		if len(c.ImportanceNames) > 0 {
			name := lookup.ImportanceName(levels, item.Importance, lookup.ImportanceFallbackView)
			if !contains(c.ImportanceNames, name) {
				continue
			}
		}
		if len(c.TagNames) > 0 && !hasAnyTag(tags, item.ID, c.TagNames) {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

func hasAnyTag(tags []model.Tag, workItemID string, selected []string) bool {
	for _, name := range lookup.TagNames(tags, workItemID) {
		if contains(selected, name) {
			return true
		}
	}
	return false
}

// SelectBoards filters the board collection by selected board ids. No
// selection keeps every board.
func SelectBoards(boards []model.Board, ids []string) []model.Board {
	if len(ids) == 0 {
		return boards
	}
	selected := []model.Board{}
	for _, b := range boards {
		if contains(ids, b.ID) {
			selected = append(selected, b)
		}
	}
	return selected
}

// ActiveTab recomputes which tab is active after a board selection change:
// exactly one selected board makes that board's tab active, anything else
// falls back to the first tab. Safe to re-run on every selection change.
func ActiveTab(boards []model.Board, selectedIDs []string) int {
	if len(selectedIDs) != 1 {
		return 0
	}
	for i, b := range boards {
		if b.ID == selectedIDs[0] {
			return i
		}
	}
	return 0
}

// VisibleStages keeps a stage only when the stage selection does not exclude
// it and the filtered items leave it at least one card. The view renders
// nothing for an invisible stage.
func VisibleStages(stages []model.Stage, filtered []model.WorkItem, stageIDs []string) []model.Stage {
	visible := []model.Stage{}
	for _, stage := range stages {
		if len(stageIDs) > 0 && !contains(stageIDs, stage.ID) {
			continue
		}
		if len(lookup.CardsForStage(filtered, stage.ID)) == 0 {
			continue
		}
		visible = append(visible, stage)
	}
	return visible
}
