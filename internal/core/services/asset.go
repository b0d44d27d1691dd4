package services

import (
	"context"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"game-media-service/internal/core/domain"
	ports "game-media-service/internal/core/ports/output"
	"game-media-service/internal/observability/metrics"
)

const DefaultMaxUploadBytes = 10 << 20

type AssetService struct {
	repo           ports.AssetRepository
	maxUploadBytes int64
}

func NewAssetService(repo ports.AssetRepository, maxUploadBytes int64) *AssetService {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &AssetService{repo: repo, maxUploadBytes: maxUploadBytes}
}

// MaxUploadBytes reports the configured upload limit so the transport layer
// can bound request ingestion before the file is read.
func (s *AssetService) MaxUploadBytes() int64 {
	return s.maxUploadBytes
}

// validateUpload enforces the per-kind extension allow-list and verifies the
// sniffed content type agrees with it. A renamed binary does not pass as PNG.
func (s *AssetService) validateUpload(kind domain.AssetKind, filename string, content []byte) (string, error) {
	if filename == "" {
		return "", domain.ErrInvalidFilename
	}
	if !kind.AllowsFilename(filename) {
		return "", kind.FileTypeError()
	}
	if len(content) == 0 {
		return "", domain.ErrEmptyFile
	}
	if int64(len(content)) > s.maxUploadBytes {
		return "", domain.ErrFileTooLarge
	}

	detected := mimetype.Detect(content)
	if !kind.AllowsContentType(detected.String()) {
		return "", domain.ErrContentTypeMismatch
	}
	return detected.String(), nil
}

func (s *AssetService) Upload(ctx context.Context, kind domain.AssetKind, filename string, content []byte) (*domain.Asset, error) {
	contentType, err := s.validateUpload(kind, filename, content)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	asset := &domain.Asset{
		ID:          uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Kind:        kind,
		Filename:    filename,
		ContentType: contentType,
		SizeBytes:   int64(len(content)),
		Content:     content,
	}

	if err := s.repo.Create(ctx, asset); err != nil {
		return nil, err
	}

	metrics.AssetUploadsTotal.WithLabelValues(string(kind)).Inc()
	metrics.AssetBytesStored.WithLabelValues(string(kind)).Add(float64(asset.SizeBytes))

	return s.repo.GetByID(ctx, kind, asset.ID)
}

func (s *AssetService) Get(ctx context.Context, kind domain.AssetKind, id uuid.UUID) (*domain.Asset, error) {
	return s.repo.GetByID(ctx, kind, id)
}

func (s *AssetService) GetContent(ctx context.Context, kind domain.AssetKind, id uuid.UUID) (*domain.Asset, error) {
	return s.repo.GetContent(ctx, kind, id)
}

func (s *AssetService) List(ctx context.Context, filter ports.AssetListFilter) ([]*domain.Asset, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}

// Replace swaps the stored file for an existing asset, re-running the same
// validation as Upload.
func (s *AssetService) Replace(ctx context.Context, kind domain.AssetKind, id uuid.UUID, filename string, content []byte) (*domain.Asset, error) {
	existing, err := s.repo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	contentType, err := s.validateUpload(kind, filename, content)
	if err != nil {
		return nil, err
	}

	existing.Filename = filename
	existing.ContentType = contentType
	existing.SizeBytes = int64(len(content))
	existing.Content = content
	existing.UpdatedAt = time.Now()

	if err := s.repo.Replace(ctx, existing); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, kind, id)
}

func (s *AssetService) Delete(ctx context.Context, kind domain.AssetKind, id uuid.UUID) error {
	return s.repo.Delete(ctx, kind, id)
}
