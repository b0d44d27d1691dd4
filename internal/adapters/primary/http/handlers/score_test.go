package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"game-media-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func submitScoreBody(t *testing.T, name string, score int64) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"player_name": name,
		"score":       score,
	})
	assert.NoError(t, err)
	return bytes.NewReader(body)
}

func TestSubmitScore(t *testing.T) {
	_, scoreRepo, r := setupRouter()

	returned := &domain.PlayerScore{
		ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now(),
		PlayerName: "player_1", Score: 4200,
	}
	scoreRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.PlayerScore")).Return(nil)
	scoreRepo.On("GetByName", mock.Anything, "player_1").Return(returned, nil)

	req, _ := http.NewRequest("POST", "/api/v1/media/scores", submitScoreBody(t, "player_1", 4200))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSubmitScore_MissingScore(t *testing.T) {
	_, _, r := setupRouter()

	body, _ := json.Marshal(map[string]interface{}{"player_name": "player_1"})
	req, _ := http.NewRequest("POST", "/api/v1/media/scores", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitScore_InvalidName(t *testing.T) {
	_, _, r := setupRouter()

	req, _ := http.NewRequest("POST", "/api/v1/media/scores", submitScoreBody(t, "a$b", 10))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitScore_NegativeScore(t *testing.T) {
	_, _, r := setupRouter()

	req, _ := http.NewRequest("POST", "/api/v1/media/scores", submitScoreBody(t, "player_1", -5))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitScore_Conflict(t *testing.T) {
	_, scoreRepo, r := setupRouter()

	scoreRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.PlayerScore")).Return(domain.ErrScoreConflict)

	req, _ := http.NewRequest("POST", "/api/v1/media/scores", submitScoreBody(t, "player_1", 10))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListScores(t *testing.T) {
	_, scoreRepo, r := setupRouter()

	scores := []*domain.PlayerScore{
		{ID: uuid.New(), PlayerName: "alice", Score: 100, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		{ID: uuid.New(), PlayerName: "bob", Score: 50, CreatedAt: time.Now(), UpdatedAt: time.Now()},
	}
	scoreRepo.On("List", mock.Anything, mock.AnythingOfType("ports.ScoreListFilter")).Return(scores, 2, nil)

	req, _ := http.NewRequest("GET", "/api/v1/media/scores?limit=10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(2), resp["total"])
}

func TestListScores_PageSizeClamped(t *testing.T) {
	_, scoreRepo, r := setupRouter()

	scoreRepo.On("List", mock.Anything, mock.AnythingOfType("ports.ScoreListFilter")).Return([]*domain.PlayerScore{}, 0, nil)

	req, _ := http.NewRequest("GET", "/api/v1/media/scores?limit=500", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(100), resp["page_size"])
}

func TestLeaderboard(t *testing.T) {
	_, scoreRepo, r := setupRouter()

	scores := []*domain.PlayerScore{
		{ID: uuid.New(), PlayerName: "alice", Score: 100},
	}
	scoreRepo.On("List", mock.Anything, mock.AnythingOfType("ports.ScoreListFilter")).Return(scores, 1, nil)

	req, _ := http.NewRequest("GET", "/api/v1/media/scores/leaderboard?limit=5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	items := resp["items"].([]interface{})
	assert.Len(t, items, 1)
}

func TestGetScore(t *testing.T) {
	_, scoreRepo, r := setupRouter()

	score := &domain.PlayerScore{ID: uuid.New(), PlayerName: "alice", Score: 7}
	scoreRepo.On("GetByName", mock.Anything, "alice").Return(score, nil)

	req, _ := http.NewRequest("GET", "/api/v1/media/scores/alice", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetScore_NotFound(t *testing.T) {
	_, scoreRepo, r := setupRouter()

	scoreRepo.On("GetByName", mock.Anything, "ghost").Return(nil, domain.ErrScoreNotFound)

	req, _ := http.NewRequest("GET", "/api/v1/media/scores/ghost", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateScore(t *testing.T) {
	_, scoreRepo, r := setupRouter()

	updated := &domain.PlayerScore{ID: uuid.New(), PlayerName: "alice", Score: 999}
	scoreRepo.On("UpdateScore", mock.Anything, "alice", int64(999)).Return(nil)
	scoreRepo.On("GetByName", mock.Anything, "alice").Return(updated, nil)

	body, _ := json.Marshal(map[string]interface{}{"score": 999})
	req, _ := http.NewRequest("PUT", "/api/v1/media/scores/alice", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateScore_NotFound(t *testing.T) {
	_, scoreRepo, r := setupRouter()

	scoreRepo.On("UpdateScore", mock.Anything, "ghost", int64(1)).Return(domain.ErrScoreNotFound)

	body, _ := json.Marshal(map[string]interface{}{"score": 1})
	req, _ := http.NewRequest("PUT", "/api/v1/media/scores/ghost", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteScore(t *testing.T) {
	_, scoreRepo, r := setupRouter()

	scoreRepo.On("Delete", mock.Anything, "alice").Return(nil)

	req, _ := http.NewRequest("DELETE", "/api/v1/media/scores/alice", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteScore_NotFound(t *testing.T) {
	_, scoreRepo, r := setupRouter()

	scoreRepo.On("Delete", mock.Anything, "ghost").Return(domain.ErrScoreNotFound)

	req, _ := http.NewRequest("DELETE", "/api/v1/media/scores/ghost", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
