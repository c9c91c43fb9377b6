package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planview/internal/export"
	"planview/internal/filter"
	"planview/internal/normalize"
)

// ExportHandler serves the assembled dataset as a downloadable JSON document
// or flat CSV. Both honor the same filter parameters as the board view.
type ExportHandler struct {
	repo SnapshotRepo
}

func NewExportHandler(repo SnapshotRepo) *ExportHandler {
	return &ExportHandler{repo: repo}
}

func (h *ExportHandler) assemble(c *gin.Context, dataset *normalize.Dataset) []export.BoardEntry {
	criteria := criteriaFromQuery(c)
	boardIDs := splitParam(c.Query("boards"))
	tab := activeTab(c, dataset.Boards, boardIDs)

	items := dataset.WorkItems(tab)
	filtered := filter.Apply(items, dataset.Tags, dataset.Importance, criteria)
	boards := filter.SelectBoards(dataset.Boards, boardIDs)

	return export.Boards(
		boards,
		dataset.Stages,
		filtered,
		dataset.Tags,
		dataset.Subtasks,
		dataset.WorkItemUsers,
		dataset.Users,
		dataset.Importance,
	)
}

// ExportJSON downloads the nested board -> stage -> item document keyed by
// the project name.
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}
	dataset, ok := loadDataset(c, h.repo, id)
	if !ok {
		return
	}

	doc := export.Document(dataset.Project, h.assemble(c, dataset))

	c.Header("Content-Disposition", `attachment; filename="`+dataset.Project.Name+`.json"`)
	c.JSON(http.StatusOK, doc)
}

// ExportCSV downloads the flattened tabular form.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}
	dataset, ok := loadDataset(c, h.repo, id)
	if !ok {
		return
	}

	csv := export.CSV(h.assemble(c, dataset))

	c.Header("Content-Disposition", `attachment; filename="`+dataset.Project.Name+`.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}
