package handlers

import (
	"net/http"
	"strconv"

	"game-media-service/internal/adapters/primary/http/dto"
	ports "game-media-service/internal/core/ports/output"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) SubmitScore(c *gin.Context) {
	var req dto.SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	score, err := h.scoreSvc.Submit(c.Request.Context(), req.PlayerName, *req.Score)
	if err != nil {
		log.WithError(err).Error("submit score failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToScoreResponse(score))
}

func (h *Handler) ListScores(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	limit = clampLimit(limit, 10)
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	scores, total, err := h.scoreSvc.List(c.Request.Context(), ports.ScoreListFilter{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		log.WithError(err).Error("list scores failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ScoreResponse, 0, len(scores))
	for _, s := range scores {
		items = append(items, dto.ToScoreResponse(s))
	}

	c.JSON(http.StatusOK, dto.ListScoresResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) Leaderboard(c *gin.Context) {
	n, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	scores, err := h.scoreSvc.Leaderboard(c.Request.Context(), n)
	if err != nil {
		log.WithError(err).Error("leaderboard failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ScoreResponse, 0, len(scores))
	for _, s := range scores {
		items = append(items, dto.ToScoreResponse(s))
	}

	c.JSON(http.StatusOK, dto.LeaderboardResponse{Items: items})
}

func (h *Handler) GetScore(c *gin.Context) {
	score, err := h.scoreSvc.Get(c.Request.Context(), c.Param("player_name"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToScoreResponse(score))
}

func (h *Handler) UpdateScore(c *gin.Context) {
	var req dto.UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	score, err := h.scoreSvc.SetScore(c.Request.Context(), c.Param("player_name"), *req.Score)
	if err != nil {
		log.WithError(err).Error("update score failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToScoreResponse(score))
}

func (h *Handler) DeleteScore(c *gin.Context) {
	if err := h.scoreSvc.Delete(c.Request.Context(), c.Param("player_name")); err != nil {
		log.WithError(err).Error("delete score failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
