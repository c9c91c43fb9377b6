package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"planview/internal/handler"
	"planview/internal/model"
	"planview/internal/normalize"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// sampleSnapshot encodes a small but fully linked export package.
func sampleSnapshot(accountID uuid.UUID) *model.Snapshot {
	files := []model.RawFile{
		{Name: "project_data.csv", Content: "ProjectId,Name\nP1,Game\n"},
		{Name: "boards_data.csv", Content: "BoardId,Name,MilestoneId,ProjectId\nB1,Main,M1,P1\nB2,Side,,P1\n"},
		{Name: "stages_data.csv", Content: "StageId,Name,Status,ProjectId\nS1,Todo,0,P1\nS2,Done,1,P1\n"},
		{Name: "workitem_data.csv", Content: "WorkItemId,Title,Description,ImportanceLevelId,StageId,BoardId,CreatorUserId,ProjectId\n" +
			"W1,Fix bug,broken save,I1,S1,B1,U1,P1\n" +
			"W2,Ship build,,I9,S2,B1,U1,P1\n" +
			"W3,Compose track,,I1,S1,B2,U1,P1\n"},
		{Name: "importance_levels_data.csv", Content: "ImportanceLevelId,Name,ProjectId\nI1,High,P1\n"},
		{Name: "milestones_data.csv", Content: "MilestoneId,Name,ProjectId\nM1,Alpha,P1\n"},
		{Name: "workitem_tags_data.csv", Content: "WorkItemId,TagName,ProjectId\nW1,bug,P1\n"},
		{Name: "project_users_data.csv", Content: "UserId,FullName,ProjectId\nU1,Ada Lovelace,P1\n"},
		{Name: "workitem_users_data.csv", Content: "WorkItemId,UserId,ProjectId\nW1,U1,P1\n"},
		{Name: "subtasks_data.csv", Content: "WorkItemId,Title,IsCompleted,ProjectId\nW1,repro,True,P1\nW1,patch,False,P1\n"},
	}
	encoded, _ := json.Marshal(files)
	return &model.Snapshot{
		AccountID: accountID,
		Files:     string(encoded),
		UpdatedAt: time.Now(),
	}
}

func setupBoardTest(accountID uuid.UUID) (*gin.Engine, *MockSnapshotRepo) {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	mockRepo := new(MockSnapshotRepo)
	boardHandler := handler.NewBoardHandler(mockRepo)

	r.Use(authenticated(accountID))
	r.GET("/project", boardHandler.GetProject)
	r.GET("/board", boardHandler.GetBoard)

	return r, mockRepo
}

func TestGetProject(t *testing.T) {
	// Arrange
	accountID := uuid.New()
	router, mockRepo := setupBoardTest(accountID)
	mockRepo.On("Load", mock.Anything, accountID).Return(sampleSnapshot(accountID), nil)

	req, _ := http.NewRequest("GET", "/project", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)

	var response handler.ProjectResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.Equal(t, model.Project{ID: "P1", Name: "Game"}, response.Project)
	assert.Len(t, response.Boards, 2)
	assert.Equal(t, "Alpha", response.Boards[0].Milestone)
	assert.Equal(t, "", response.Boards[1].Milestone)
	assert.Len(t, response.Stages, 2)
	assert.Len(t, response.ImportanceLevels, 1)
}

func TestGetProject_NoUploadYet(t *testing.T) {
	// Arrange
	accountID := uuid.New()
	router, mockRepo := setupBoardTest(accountID)
	mockRepo.On("Load", mock.Anything, accountID).Return(nil, nil)

	req, _ := http.NewRequest("GET", "/project", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert: sentinel project, no boards, no failure
	assert.Equal(t, http.StatusOK, resp.Code)

	var response handler.ProjectResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.Equal(t, normalize.SentinelProjectID, response.Project.ID)
	assert.Equal(t, normalize.SentinelProjectName, response.Project.Name)
	assert.Empty(t, response.Boards)
}

func TestGetBoard_DefaultTab(t *testing.T) {
	// Arrange
	accountID := uuid.New()
	router, mockRepo := setupBoardTest(accountID)
	mockRepo.On("Load", mock.Anything, accountID).Return(sampleSnapshot(accountID), nil)

	req, _ := http.NewRequest("GET", "/board", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)

	var response handler.BoardViewResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.Equal(t, 0, response.ActiveTab)
	assert.Equal(t, "B1", response.Board.ID)
	assert.Len(t, response.Stages, 2)

	todo := response.Stages[0]
	assert.Equal(t, "Todo", todo.Name)
	assert.Len(t, todo.Cards, 1)
	card := todo.Cards[0]
	assert.Equal(t, "W1 - Fix bug", card.Title)
	assert.Equal(t, "High", card.Importance)
	assert.Equal(t, "Ada Lovelace", card.CreatorUser)
	assert.Equal(t, []string{"bug"}, card.Tags)
	assert.Len(t, card.Subtasks, 2)
	assert.True(t, card.Subtasks[0].Complete)
	assert.False(t, card.Subtasks[1].Complete)

	// W2 carries an unknown importance level: the board shows "Normal"
	done := response.Stages[1]
	assert.Equal(t, "Done", done.Name)
	assert.Equal(t, "Normal", done.Cards[0].Importance)
}

func TestGetBoard_TagFilterHidesEmptyStages(t *testing.T) {
	// Arrange
	accountID := uuid.New()
	router, mockRepo := setupBoardTest(accountID)
	mockRepo.On("Load", mock.Anything, accountID).Return(sampleSnapshot(accountID), nil)

	req, _ := http.NewRequest("GET", "/board?tags=bug", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)

	var response handler.BoardViewResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.Len(t, response.Stages, 1)
	assert.Equal(t, "Todo", response.Stages[0].Name)
	assert.Len(t, response.Stages[0].Cards, 1)
}

func TestGetBoard_BoardSelectionSwitchesTab(t *testing.T) {
	// Arrange
	accountID := uuid.New()
	router, mockRepo := setupBoardTest(accountID)
	mockRepo.On("Load", mock.Anything, accountID).Return(sampleSnapshot(accountID), nil)

	req, _ := http.NewRequest("GET", "/board?boards=B2", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert: exactly one selected board makes it the active tab
	assert.Equal(t, http.StatusOK, resp.Code)

	var response handler.BoardViewResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.Equal(t, 1, response.ActiveTab)
	assert.Equal(t, "B2", response.Board.ID)
	assert.Len(t, response.Stages, 1)
	assert.Equal(t, "W3 - Compose track", response.Stages[0].Cards[0].Title)
}

func TestGetBoard_OutOfRangeTab(t *testing.T) {
	// Arrange
	accountID := uuid.New()
	router, mockRepo := setupBoardTest(accountID)
	mockRepo.On("Load", mock.Anything, accountID).Return(sampleSnapshot(accountID), nil)

	req, _ := http.NewRequest("GET", "/board?tab=7", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert: empty board, not a fault
	assert.Equal(t, http.StatusOK, resp.Code)

	var response handler.BoardViewResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.Nil(t, response.Board)
	assert.Empty(t, response.Stages)
}
