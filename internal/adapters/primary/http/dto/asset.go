package dto

import (
	"time"

	"github.com/google/uuid"

	"game-media-service/internal/core/domain"
)

const timeFormat = time.RFC3339

type AssetResponse struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
	Kind        string    `json:"kind"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
}

type ListAssetsResponse struct {
	Items      []AssetResponse `json:"items"`
	Total      int             `json:"total"`
	PageSize   int             `json:"page_size"`
	NextOffset int             `json:"next_offset"`
}

func ToAssetResponse(a *domain.Asset) AssetResponse {
	return AssetResponse{
		ID:          a.ID,
		CreatedAt:   a.CreatedAt.Format(timeFormat),
		UpdatedAt:   a.UpdatedAt.Format(timeFormat),
		Kind:        string(a.Kind),
		Filename:    a.Filename,
		ContentType: a.ContentType,
		SizeBytes:   a.SizeBytes,
	}
}
