package handlers

import (
	"game-media-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	assetSvc *services.AssetService
	scoreSvc *services.ScoreService
}

func New(assetSvc *services.AssetService, scoreSvc *services.ScoreService) *Handler {
	return &Handler{
		assetSvc: assetSvc,
		scoreSvc: scoreSvc,
	}
}

// clampLimit applies the same bounds the services enforce so response
// pagination metadata matches the page actually served.
func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > 100 {
		return 100
	}
	return limit
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Sprites
	r.POST("/sprites", h.UploadSprite)
	r.GET("/sprites", h.ListSprites)
	r.GET("/sprites/:id", h.GetSprite)
	r.GET("/sprites/:id/content", h.GetSpriteContent)
	r.PUT("/sprites/:id", h.ReplaceSprite)
	r.DELETE("/sprites/:id", h.DeleteSprite)

	// Audio clips
	r.POST("/audio", h.UploadAudio)
	r.GET("/audio", h.ListAudio)
	r.GET("/audio/:id", h.GetAudio)
	r.GET("/audio/:id/content", h.GetAudioContent)
	r.PUT("/audio/:id", h.ReplaceAudio)
	r.DELETE("/audio/:id", h.DeleteAudio)

	// Player scores
	r.POST("/scores", h.SubmitScore)
	r.GET("/scores", h.ListScores)
	r.GET("/scores/leaderboard", h.Leaderboard)
	r.GET("/scores/:player_name", h.GetScore)
	r.PUT("/scores/:player_name", h.UpdateScore)
	r.DELETE("/scores/:player_name", h.DeleteScore)
}
