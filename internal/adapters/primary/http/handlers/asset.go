package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"game-media-service/internal/adapters/primary/http/dto"
	"game-media-service/internal/core/domain"
	ports "game-media-service/internal/core/ports/output"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Sprite endpoints

func (h *Handler) UploadSprite(c *gin.Context)     { h.uploadAsset(c, domain.AssetKindSprite) }
func (h *Handler) ListSprites(c *gin.Context)      { h.listAssets(c, domain.AssetKindSprite) }
func (h *Handler) GetSprite(c *gin.Context)        { h.getAsset(c, domain.AssetKindSprite) }
func (h *Handler) GetSpriteContent(c *gin.Context) { h.getAssetContent(c, domain.AssetKindSprite) }
func (h *Handler) ReplaceSprite(c *gin.Context)    { h.replaceAsset(c, domain.AssetKindSprite) }
func (h *Handler) DeleteSprite(c *gin.Context)     { h.deleteAsset(c, domain.AssetKindSprite) }

// Audio endpoints

func (h *Handler) UploadAudio(c *gin.Context)     { h.uploadAsset(c, domain.AssetKindAudio) }
func (h *Handler) ListAudio(c *gin.Context)       { h.listAssets(c, domain.AssetKindAudio) }
func (h *Handler) GetAudio(c *gin.Context)        { h.getAsset(c, domain.AssetKindAudio) }
func (h *Handler) GetAudioContent(c *gin.Context) { h.getAssetContent(c, domain.AssetKindAudio) }
func (h *Handler) ReplaceAudio(c *gin.Context)    { h.replaceAsset(c, domain.AssetKindAudio) }
func (h *Handler) DeleteAudio(c *gin.Context)     { h.deleteAsset(c, domain.AssetKindAudio) }

func (h *Handler) uploadAsset(c *gin.Context, kind domain.AssetKind) {
	filename, content, ok := h.readUploadedFile(c)
	if !ok {
		return
	}

	asset, err := h.assetSvc.Upload(c.Request.Context(), kind, filename, content)
	if err != nil {
		log.WithError(err).WithField("kind", kind).Error("upload asset failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}

func (h *Handler) listAssets(c *gin.Context, kind domain.AssetKind) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	limit = clampLimit(limit, 20)
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.AssetListFilter{
		Kind:   kind,
		Search: c.Query("search"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Limit:  limit,
		Offset: offset,
	}

	assets, total, err := h.assetSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).WithField("kind", kind).Error("list assets failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.AssetResponse, 0, len(assets))
	for _, a := range assets {
		items = append(items, dto.ToAssetResponse(a))
	}

	c.JSON(http.StatusOK, dto.ListAssetsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) getAsset(c *gin.Context, kind domain.AssetKind) {
	id, ok := parseAssetID(c)
	if !ok {
		return
	}

	asset, err := h.assetSvc.Get(c.Request.Context(), kind, id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

func (h *Handler) getAssetContent(c *gin.Context, kind domain.AssetKind) {
	id, ok := parseAssetID(c)
	if !ok {
		return
	}

	asset, err := h.assetSvc.GetContent(c.Request.Context(), kind, id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": asset.Filename}))
	c.Data(http.StatusOK, asset.ContentType, asset.Content)
}

func (h *Handler) replaceAsset(c *gin.Context, kind domain.AssetKind) {
	id, ok := parseAssetID(c)
	if !ok {
		return
	}

	filename, content, ok := h.readUploadedFile(c)
	if !ok {
		return
	}

	asset, err := h.assetSvc.Replace(c.Request.Context(), kind, id, filename, content)
	if err != nil {
		log.WithError(err).WithField("kind", kind).Error("replace asset failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

func (h *Handler) deleteAsset(c *gin.Context, kind domain.AssetKind) {
	id, ok := parseAssetID(c)
	if !ok {
		return
	}

	if err := h.assetSvc.Delete(c.Request.Context(), kind, id); err != nil {
		log.WithError(err).WithField("kind", kind).Error("delete asset failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func parseAssetID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
		return uuid.Nil, false
	}
	return id, true
}

// multipartOverhead is slack for multipart framing and form fields on top of
// the file size limit when capping the request body.
const multipartOverhead = 10 << 10

// readUploadedFile pulls the multipart "file" field into memory. The request
// body is capped before parsing so an oversized upload is rejected without
// being fully ingested; the service re-checks the limit on the bytes read.
func (h *Handler) readUploadedFile(c *gin.Context) (string, []byte, bool) {
	maxBytes := h.assetSvc.MaxUploadBytes()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+multipartOverhead)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": domain.ErrFileTooLarge.Error()})
			return "", nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' is required"})
		return "", nil, false
	}
	if fileHeader.Size > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": domain.ErrFileTooLarge.Error()})
		return "", nil, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
		return "", nil, false
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
		return "", nil, false
	}

	return fileHeader.Filename, content, true
}
