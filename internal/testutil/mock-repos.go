package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"game-media-service/internal/core/domain"
	ports "game-media-service/internal/core/ports/output"
)

// MockAssetRepo is a mock of AssetRepository.
type MockAssetRepo struct {
	mock.Mock
}

func (m *MockAssetRepo) Create(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepo) GetByID(ctx context.Context, kind domain.AssetKind, id uuid.UUID) (*domain.Asset, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepo) GetContent(ctx context.Context, kind domain.AssetKind, id uuid.UUID) (*domain.Asset, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepo) Replace(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepo) Delete(ctx context.Context, kind domain.AssetKind, id uuid.UUID) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockAssetRepo) List(ctx context.Context, filter ports.AssetListFilter) ([]*domain.Asset, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Asset), args.Int(1), args.Error(2)
}

// MockPlayerScoreRepo is a mock of PlayerScoreRepository.
type MockPlayerScoreRepo struct {
	mock.Mock
}

func (m *MockPlayerScoreRepo) Create(ctx context.Context, score *domain.PlayerScore) error {
	args := m.Called(ctx, score)
	return args.Error(0)
}

func (m *MockPlayerScoreRepo) GetByName(ctx context.Context, playerName string) (*domain.PlayerScore, error) {
	args := m.Called(ctx, playerName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerScore), args.Error(1)
}

func (m *MockPlayerScoreRepo) UpdateScore(ctx context.Context, playerName string, score int64) error {
	args := m.Called(ctx, playerName, score)
	return args.Error(0)
}

func (m *MockPlayerScoreRepo) Delete(ctx context.Context, playerName string) error {
	args := m.Called(ctx, playerName)
	return args.Error(0)
}

func (m *MockPlayerScoreRepo) List(ctx context.Context, filter ports.ScoreListFilter) ([]*domain.PlayerScore, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.PlayerScore), args.Int(1), args.Error(2)
}
