package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planview/internal/filter"
	"planview/internal/lookup"
	"planview/internal/model"
	"planview/internal/normalize"
)

// BoardHandler serves the normalized project overview and the filterable
// kanban board view.
type BoardHandler struct {
	repo SnapshotRepo
}

func NewBoardHandler(repo SnapshotRepo) *BoardHandler {
	return &BoardHandler{repo: repo}
}

// TabResponse is one selectable board tab with its resolved milestone name.
type TabResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Milestone string `json:"milestone"`
}

// ProjectResponse carries everything the filters panel and tab bar need.
type ProjectResponse struct {
	Project          model.Project      `json:"project"`
	Boards           []TabResponse      `json:"boards"`
	Stages           []model.Stage      `json:"stages"`
	ImportanceLevels []model.Importance `json:"importance_levels"`
}

// GetProject returns the active project with its boards, stages and
// importance levels.
func (h *BoardHandler) GetProject(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}
	dataset, ok := loadDataset(c, h.repo, id)
	if !ok {
		return
	}

	tabs := []TabResponse{}
	for _, b := range dataset.Boards {
		tabs = append(tabs, TabResponse{
			ID:        b.ID,
			Name:      b.Name,
			Milestone: lookup.MilestoneName(dataset.Milestones, b.MilestoneID),
		})
	}

	c.JSON(http.StatusOK, ProjectResponse{
		Project:          dataset.Project,
		Boards:           tabs,
		Stages:           dataset.Stages,
		ImportanceLevels: dataset.Importance,
	})
}

// SubtaskResponse mirrors the card checklist entries.
type SubtaskResponse struct {
	Title    string `json:"title"`
	Complete bool   `json:"complete"`
}

// CardResponse is one expanded work item on the board. Importance falls back
// to "Normal" and unresolved assignees stay as blanks, exactly as the board
// renders them; the export path resolves both differently.
type CardResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Importance  string            `json:"importance"`
	CreatorUser string            `json:"creator_user"`
	Tags        []string          `json:"tags"`
	Users       []string          `json:"users"`
	Subtasks    []SubtaskResponse `json:"subtasks"`
}

type StageResponse struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Cards []CardResponse `json:"cards"`
}

type BoardViewResponse struct {
	Project   model.Project   `json:"project"`
	ActiveTab int             `json:"active_tab"`
	Board     *model.Board    `json:"board"`
	Stages    []StageResponse `json:"stages"`
}

// GetBoard returns the board view for the active tab, restricted by the
// selected filter criteria. Stages without visible cards are omitted.
func (h *BoardHandler) GetBoard(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}
	dataset, ok := loadDataset(c, h.repo, id)
	if !ok {
		return
	}

	criteria := criteriaFromQuery(c)
	boardIDs := splitParam(c.Query("boards"))
	tab := activeTab(c, dataset.Boards, boardIDs)

	items := dataset.WorkItems(tab)
	filtered := filter.Apply(items, dataset.Tags, dataset.Importance, criteria)
	visible := filter.VisibleStages(dataset.Stages, filtered, criteria.StageIDs)

	stages := []StageResponse{}
	for _, stage := range visible {
		cards := []CardResponse{}
		for _, item := range lookup.CardsForStage(filtered, stage.ID) {
			cards = append(cards, h.card(dataset, item))
		}
		stages = append(stages, StageResponse{ID: stage.ID, Name: stage.Name, Cards: cards})
	}

	var board *model.Board
	if tab >= 0 && tab < len(dataset.Boards) {
		board = &dataset.Boards[tab]
	}

	c.JSON(http.StatusOK, BoardViewResponse{
		Project:   dataset.Project,
		ActiveTab: tab,
		Board:     board,
		Stages:    stages,
	})
}

func (h *BoardHandler) card(dataset *normalize.Dataset, item model.WorkItem) CardResponse {
	subtasks := []SubtaskResponse{}
	for _, s := range lookup.SubtasksFor(dataset.Subtasks, item.ID) {
		subtasks = append(subtasks, SubtaskResponse{Title: s.Title, Complete: s.IsCompleted})
	}

	return CardResponse{
		ID:          item.ID,
		Title:       item.ID + " - " + item.Title,
		Description: item.Description,
		Importance:  lookup.ImportanceName(dataset.Importance, item.Importance, lookup.ImportanceFallbackView),
		CreatorUser: lookup.UserName(dataset.Users, item.CreatorUser),
		Tags:        lookup.TagNames(dataset.Tags, item.ID),
		Users:       lookup.AssigneeNames(dataset.WorkItemUsers, dataset.Users, item.ID),
		Subtasks:    subtasks,
	}
}
