package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"planview/internal/middleware"
	"planview/internal/model"
	"planview/internal/parser"
)

// SnapshotRepo is the persistence port for the last-loaded file set.
type SnapshotRepo interface {
	Load(ctx context.Context, accountID uuid.UUID) (*model.Snapshot, error)
	Save(ctx context.Context, snapshot *model.Snapshot) error
	Clear(ctx context.Context, accountID uuid.UUID) error
}

// SnapshotHandler manages the uploaded export package of an account.
type SnapshotHandler struct {
	repo SnapshotRepo
}

func NewSnapshotHandler(repo SnapshotRepo) *SnapshotHandler {
	return &SnapshotHandler{repo: repo}
}

// accountID pulls the authenticated account id set by the auth middleware.
func accountID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(middleware.AccountIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return uuid.Nil, false
	}
	id, ok := raw.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid account ID format"})
		return uuid.Nil, false
	}
	return id, true
}

type UploadResponse struct {
	Files       int    `json:"files"`
	Recognized  int    `json:"recognized"`
	LastUpdated string `json:"last_updated"`
}

// Upload replaces the account's file set with the uploaded one. Only .csv and
// .json files are kept; files with unrecognized names are stored but simply
// never consulted by the pipeline, matching the source export package which
// ships more files than the board needs.
func (h *SnapshotHandler) Upload(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
		return
	}

	files := []model.RawFile{}
	recognized := 0
	for _, fh := range headers {
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if ext != ".csv" && ext != ".json" {
			continue
		}
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read " + fh.Filename})
			return
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read " + fh.Filename})
			return
		}
		if _, ok := parser.Role(fh.Filename); ok {
			recognized++
		}
		files = append(files, model.RawFile{Name: fh.Filename, Content: string(content)})
	}

	encoded, err := json.Marshal(files)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode file set"})
		return
	}

	snapshot := &model.Snapshot{
		AccountID: id,
		Files:     string(encoded),
		UpdatedAt: time.Now(),
	}
	if err := h.repo.Save(c.Request.Context(), snapshot); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file set"})
		return
	}

	c.JSON(http.StatusOK, UploadResponse{
		Files:       len(files),
		Recognized:  recognized,
		LastUpdated: snapshot.UpdatedAt.Format(time.RFC3339),
	})
}

type StatusResponse struct {
	Files       int    `json:"files"`
	LastUpdated string `json:"last_updated,omitempty"`
}

// Status reports how many files are loaded and when.
func (h *SnapshotHandler) Status(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	snapshot, err := h.repo.Load(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load file set"})
		return
	}
	if snapshot == nil {
		c.JSON(http.StatusOK, StatusResponse{Files: 0})
		return
	}

	var files []model.RawFile
	if err := json.Unmarshal([]byte(snapshot.Files), &files); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stored file set is corrupt"})
		return
	}

	c.JSON(http.StatusOK, StatusResponse{
		Files:       len(files),
		LastUpdated: snapshot.UpdatedAt.Format(time.RFC3339),
	})
}

// Clear drops the account's file set.
func (h *SnapshotHandler) Clear(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	if err := h.repo.Clear(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear file set"})
		return
	}

	c.Status(http.StatusNoContent)
}
