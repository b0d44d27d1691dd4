package ports

import (
	"context"

	"github.com/google/uuid"

	"game-media-service/internal/core/domain"
)

type AssetListFilter struct {
	Kind   domain.AssetKind
	Search string
	SortBy string
	Order  string
	Limit  int
	Offset int
}

type ScoreListFilter struct {
	Limit  int
	Offset int
}

type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) error
	// GetByID returns asset metadata without the content bytes.
	GetByID(ctx context.Context, kind domain.AssetKind, id uuid.UUID) (*domain.Asset, error)
	// GetContent returns the asset with its content bytes populated.
	GetContent(ctx context.Context, kind domain.AssetKind, id uuid.UUID) (*domain.Asset, error)
	// Replace overwrites filename, content type and content of an existing asset.
	Replace(ctx context.Context, asset *domain.Asset) error
	Delete(ctx context.Context, kind domain.AssetKind, id uuid.UUID) error
	List(ctx context.Context, filter AssetListFilter) ([]*domain.Asset, int, error)
}

type PlayerScoreRepository interface {
	Create(ctx context.Context, score *domain.PlayerScore) error
	GetByName(ctx context.Context, playerName string) (*domain.PlayerScore, error)
	UpdateScore(ctx context.Context, playerName string, score int64) error
	Delete(ctx context.Context, playerName string) error
	// List returns scores ordered by score descending.
	List(ctx context.Context, filter ScoreListFilter) ([]*domain.PlayerScore, int, error)
}
