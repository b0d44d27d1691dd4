package domain

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

type AssetKind string

const (
	AssetKindSprite AssetKind = "sprite"
	AssetKindAudio  AssetKind = "audio"
)

// Accepted media per kind. Sprites are raster images only; audio is MP3 only.
var (
	spriteExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}
	audioExtensions  = map[string]bool{".mp3": true}

	spriteContentTypes = map[string]bool{"image/png": true, "image/jpeg": true}
	audioContentTypes  = map[string]bool{"audio/mpeg": true}
)

func (k AssetKind) AllowsFilename(filename string) bool {
	if filename == "" {
		return false
	}
	ext := strings.ToLower(filepath.Ext(filename))
	switch k {
	case AssetKindSprite:
		return spriteExtensions[ext]
	case AssetKindAudio:
		return audioExtensions[ext]
	}
	return false
}

func (k AssetKind) AllowsContentType(contentType string) bool {
	// Strip parameters like "; charset=..." that sniffers may append.
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	contentType = strings.TrimSpace(strings.ToLower(contentType))
	switch k {
	case AssetKindSprite:
		return spriteContentTypes[contentType]
	case AssetKindAudio:
		return audioContentTypes[contentType]
	}
	return false
}

// FileTypeError returns the kind-specific rejection error for uploads.
func (k AssetKind) FileTypeError() error {
	if k == AssetKindAudio {
		return ErrAudioFileType
	}
	return ErrSpriteFileType
}

type Asset struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Kind        AssetKind `json:"kind"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`

	// Content is only populated by content reads, never by lists.
	Content []byte `json:"-"`
}
