package handlers

import (
	"errors"
	"net/http"

	"game-media-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrAssetNotFound),
		errors.Is(err, domain.ErrScoreNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrScoreConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidFilename),
		errors.Is(err, domain.ErrSpriteFileType),
		errors.Is(err, domain.ErrAudioFileType),
		errors.Is(err, domain.ErrContentTypeMismatch),
		errors.Is(err, domain.ErrEmptyFile),
		errors.Is(err, domain.ErrInvalidPlayerName),
		errors.Is(err, domain.ErrInvalidScore):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Payload too large
	case errors.Is(err, domain.ErrFileTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
