package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"game-media-service/internal/core/domain"
	ports "game-media-service/internal/core/ports/output"
	"game-media-service/internal/observability/metrics"
)

type ScoreService struct {
	repo ports.PlayerScoreRepository
}

func NewScoreService(repo ports.PlayerScoreRepository) *ScoreService {
	return &ScoreService{repo: repo}
}

func (s *ScoreService) Submit(ctx context.Context, playerName string, score int64) (*domain.PlayerScore, error) {
	if err := domain.ValidatePlayerName(playerName); err != nil {
		return nil, err
	}
	if err := domain.ValidateScore(score); err != nil {
		return nil, err
	}

	now := time.Now()
	record := &domain.PlayerScore{
		ID:         uuid.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
		PlayerName: playerName,
		Score:      score,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	metrics.ScoresSubmittedTotal.Inc()

	return s.repo.GetByName(ctx, playerName)
}

func (s *ScoreService) Get(ctx context.Context, playerName string) (*domain.PlayerScore, error) {
	if err := domain.ValidatePlayerName(playerName); err != nil {
		return nil, err
	}
	return s.repo.GetByName(ctx, playerName)
}

func (s *ScoreService) SetScore(ctx context.Context, playerName string, score int64) (*domain.PlayerScore, error) {
	if err := domain.ValidatePlayerName(playerName); err != nil {
		return nil, err
	}
	if err := domain.ValidateScore(score); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateScore(ctx, playerName, score); err != nil {
		return nil, err
	}
	return s.repo.GetByName(ctx, playerName)
}

func (s *ScoreService) Delete(ctx context.Context, playerName string) error {
	if err := domain.ValidatePlayerName(playerName); err != nil {
		return err
	}
	return s.repo.Delete(ctx, playerName)
}

func (s *ScoreService) List(ctx context.Context, filter ports.ScoreListFilter) ([]*domain.PlayerScore, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}

// Leaderboard returns the top n scores.
func (s *ScoreService) Leaderboard(ctx context.Context, n int) ([]*domain.PlayerScore, error) {
	if n <= 0 {
		n = 10
	}
	if n > 100 {
		n = 100
	}
	scores, _, err := s.repo.List(ctx, ports.ScoreListFilter{Limit: n})
	return scores, err
}
