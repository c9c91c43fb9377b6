package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"planview/internal/filter"
	"planview/internal/model"
	"planview/internal/normalize"
	"planview/internal/parser"
)

// loadDataset rebuilds the normalized dataset from the account's stored file
// set. No stored snapshot is not an error: the pipeline runs over an empty
// file set and the sentinel project takes over, same as the board before the
// first upload.
func loadDataset(c *gin.Context, repo SnapshotRepo, id uuid.UUID) (*normalize.Dataset, bool) {
	snapshot, err := repo.Load(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load file set"})
		return nil, false
	}

	files := []model.RawFile{}
	if snapshot != nil {
		if err := json.Unmarshal([]byte(snapshot.Files), &files); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Stored file set is corrupt"})
			return nil, false
		}
	}

	return normalize.Build(parser.Parse(files)), true
}

// splitParam turns a comma-separated query value into a selection set; an
// absent or blank value selects nothing.
func splitParam(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func criteriaFromQuery(c *gin.Context) filter.Criteria {
	return filter.Criteria{
		StageIDs:        splitParam(c.Query("stages")),
		ImportanceNames: splitParam(c.Query("importance")),
		TagNames:        splitParam(c.Query("tags")),
	}
}

// activeTab picks the board tab: an explicit tab parameter wins, otherwise
// the tab is recomputed from the board selection. A non-numeric or
// out-of-range tab is passed through; the work item normalizer answers it
// with an empty set instead of faulting.
func activeTab(c *gin.Context, boards []model.Board, selectedBoardIDs []string) int {
	if raw := c.Query("tab"); raw != "" {
		if tab, err := strconv.Atoi(raw); err == nil {
			return tab
		}
	}
	return filter.ActiveTab(boards, selectedBoardIDs)
}
