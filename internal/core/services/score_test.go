package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"game-media-service/internal/core/domain"
	ports "game-media-service/internal/core/ports/output"
	"game-media-service/internal/testutil"
)

func TestScoreService_Submit(t *testing.T) {
	repo := new(testutil.MockPlayerScoreRepo)
	svc := NewScoreService(repo)

	returned := &domain.PlayerScore{
		ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now(),
		PlayerName: "player_1", Score: 4200,
	}

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.PlayerScore")).Return(nil)
	repo.On("GetByName", mock.Anything, "player_1").Return(returned, nil)

	score, err := svc.Submit(context.Background(), "player_1", 4200)
	assert.NoError(t, err)
	assert.Equal(t, int64(4200), score.Score)
	repo.AssertExpectations(t)
}

func TestScoreService_Submit_InvalidName(t *testing.T) {
	svc := NewScoreService(new(testutil.MockPlayerScoreRepo))

	for _, name := range []string{"", "a$b", "x{y}", strings.Repeat("a", 51)} {
		_, err := svc.Submit(context.Background(), name, 10)
		assert.ErrorIs(t, err, domain.ErrInvalidPlayerName, "name %q", name)
	}
}

func TestScoreService_Submit_NegativeScore(t *testing.T) {
	svc := NewScoreService(new(testutil.MockPlayerScoreRepo))

	_, err := svc.Submit(context.Background(), "player_1", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidScore)
}

func TestScoreService_Submit_Conflict(t *testing.T) {
	repo := new(testutil.MockPlayerScoreRepo)
	svc := NewScoreService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.PlayerScore")).Return(domain.ErrScoreConflict)

	_, err := svc.Submit(context.Background(), "player_1", 10)
	assert.ErrorIs(t, err, domain.ErrScoreConflict)
}

func TestScoreService_Get(t *testing.T) {
	repo := new(testutil.MockPlayerScoreRepo)
	svc := NewScoreService(repo)

	expected := &domain.PlayerScore{PlayerName: "alice", Score: 7}
	repo.On("GetByName", mock.Anything, "alice").Return(expected, nil)

	score, err := svc.Get(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), score.Score)
}

func TestScoreService_Get_NotFound(t *testing.T) {
	repo := new(testutil.MockPlayerScoreRepo)
	svc := NewScoreService(repo)

	repo.On("GetByName", mock.Anything, "ghost").Return(nil, domain.ErrScoreNotFound)

	_, err := svc.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrScoreNotFound)
}

func TestScoreService_SetScore(t *testing.T) {
	repo := new(testutil.MockPlayerScoreRepo)
	svc := NewScoreService(repo)

	updated := &domain.PlayerScore{PlayerName: "alice", Score: 99}
	repo.On("UpdateScore", mock.Anything, "alice", int64(99)).Return(nil)
	repo.On("GetByName", mock.Anything, "alice").Return(updated, nil)

	score, err := svc.SetScore(context.Background(), "alice", 99)
	assert.NoError(t, err)
	assert.Equal(t, int64(99), score.Score)
}

func TestScoreService_SetScore_NotFound(t *testing.T) {
	repo := new(testutil.MockPlayerScoreRepo)
	svc := NewScoreService(repo)

	repo.On("UpdateScore", mock.Anything, "ghost", int64(1)).Return(domain.ErrScoreNotFound)

	_, err := svc.SetScore(context.Background(), "ghost", 1)
	assert.ErrorIs(t, err, domain.ErrScoreNotFound)
}

func TestScoreService_Delete_InvalidName(t *testing.T) {
	svc := NewScoreService(new(testutil.MockPlayerScoreRepo))

	err := svc.Delete(context.Background(), "a$b")
	assert.ErrorIs(t, err, domain.ErrInvalidPlayerName)
}

func TestScoreService_List_DefaultLimit(t *testing.T) {
	repo := new(testutil.MockPlayerScoreRepo)
	svc := NewScoreService(repo)

	expectedFilter := ports.ScoreListFilter{Limit: 10}
	repo.On("List", mock.Anything, expectedFilter).Return([]*domain.PlayerScore{}, 0, nil)

	_, _, err := svc.List(context.Background(), ports.ScoreListFilter{})
	assert.NoError(t, err)
}

func TestScoreService_Leaderboard(t *testing.T) {
	repo := new(testutil.MockPlayerScoreRepo)
	svc := NewScoreService(repo)

	scores := []*domain.PlayerScore{
		{PlayerName: "alice", Score: 100},
		{PlayerName: "bob", Score: 50},
	}
	repo.On("List", mock.Anything, ports.ScoreListFilter{Limit: 10}).Return(scores, 2, nil)

	top, err := svc.Leaderboard(context.Background(), 0)
	assert.NoError(t, err)
	assert.Len(t, top, 2)
	assert.Equal(t, "alice", top[0].PlayerName)
}
