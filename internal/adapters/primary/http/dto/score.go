package dto

import (
	"github.com/google/uuid"

	"game-media-service/internal/core/domain"
)

type SubmitScoreRequest struct {
	PlayerName string `json:"player_name" binding:"required,max=50"`
	Score      *int64 `json:"score" binding:"required"`
}

type UpdateScoreRequest struct {
	Score *int64 `json:"score" binding:"required"`
}

type ScoreResponse struct {
	ID         uuid.UUID `json:"id"`
	CreatedAt  string    `json:"created_at"`
	UpdatedAt  string    `json:"updated_at"`
	PlayerName string    `json:"player_name"`
	Score      int64     `json:"score"`
}

type ListScoresResponse struct {
	Items      []ScoreResponse `json:"items"`
	Total      int             `json:"total"`
	PageSize   int             `json:"page_size"`
	NextOffset int             `json:"next_offset"`
}

type LeaderboardResponse struct {
	Items []ScoreResponse `json:"items"`
}

func ToScoreResponse(s *domain.PlayerScore) ScoreResponse {
	return ScoreResponse{
		ID:         s.ID,
		CreatedAt:  s.CreatedAt.Format(timeFormat),
		UpdatedAt:  s.UpdatedAt.Format(timeFormat),
		PlayerName: s.PlayerName,
		Score:      s.Score,
	}
}
