package domain

import "errors"

// Not found errors
var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrScoreNotFound = errors.New("player score not found")
)

// Conflict errors
var (
	ErrScoreConflict = errors.New("score for this player already exists")
)

// Upload validation errors
var (
	ErrInvalidFilename     = errors.New("filename is required")
	ErrSpriteFileType      = errors.New("only PNG and JPG/JPEG files are allowed")
	ErrAudioFileType       = errors.New("only MP3 files are allowed")
	ErrContentTypeMismatch = errors.New("file content does not match its extension")
	ErrEmptyFile           = errors.New("file is empty")
	ErrFileTooLarge        = errors.New("file exceeds the upload size limit")
)

// Score validation errors
var (
	ErrInvalidPlayerName = errors.New("player name must be 1-50 letters, digits, underscores or spaces")
	ErrInvalidScore      = errors.New("score must be zero or positive")
)
