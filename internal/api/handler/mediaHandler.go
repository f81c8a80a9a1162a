package handler

import (
	"errors"
	"net/http"
	"strconv"

	"mediahub/internal/api/dto"
	"mediahub/internal/api/models"
	"mediahub/internal/api/repository"
	"mediahub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaService service.MediaService
}

func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// RegisterRoutes registers media routes. Reads are public, writes require
// an authenticated caller.
func (h *MediaHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	media := public.Group("/media")
	{
		media.GET("", h.List)
		media.GET("/search", h.Search)
		media.GET("/:media_id", h.GetByID)
	}

	authed := protected.Group("/media")
	{
		authed.POST("", h.Create)
		authed.PUT("/:media_id", h.Update)
		authed.DELETE("/:media_id", h.Delete)
	}
}

// Create adds a new media entry owned by the caller
// POST /api/media
func (h *MediaHandler) Create(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateMediaDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	media, err := h.mediaService.Create(c.Request.Context(), req.ToModel(), username.(string))
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) || errors.Is(err, service.ErrInvalidMediaType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, media)
}

// Update edits a media entry (creator only)
// PUT /api/media/:media_id
func (h *MediaHandler) Update(c *gin.Context) {
	mediaID, err := strconv.ParseInt(c.Param("media_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media ID"})
		return
	}

	username, exists := c.Get("username")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateMediaDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	media, err := h.mediaService.Update(c.Request.Context(), mediaID, req.ToModel(), username.(string))
	if err != nil {
		h.writeMediaError(c, err)
		return
	}

	c.JSON(http.StatusOK, media)
}

// Delete removes a media entry (creator only)
// DELETE /api/media/:media_id
func (h *MediaHandler) Delete(c *gin.Context) {
	mediaID, err := strconv.ParseInt(c.Param("media_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media ID"})
		return
	}

	username, exists := c.Get("username")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.mediaService.Delete(c.Request.Context(), mediaID, username.(string)); err != nil {
		h.writeMediaError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "media deleted successfully"})
}

// GetByID retrieves a single media entry
// GET /api/media/:media_id
func (h *MediaHandler) GetByID(c *gin.Context) {
	mediaID, err := strconv.ParseInt(c.Param("media_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media ID"})
		return
	}

	media, err := h.mediaService.GetByID(c.Request.Context(), mediaID)
	if err != nil {
		h.writeMediaError(c, err)
		return
	}

	c.JSON(http.StatusOK, media)
}

// List retrieves media entries with pagination
// GET /api/media?page=1&page_size=20
func (h *MediaHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	media, total, err := h.mediaService.GetAll(c.Request.Context(), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedMediaResponse(media, total, page, pageSize))
}

// Search filters media by title, genre, type, minimum average rating and
// age restriction
// GET /api/media/search?title=&genre=&media_type=&min_rating=&age_restriction=
func (h *MediaHandler) Search(c *gin.Context) {
	filters := repository.MediaSearchFilters{
		Title:     c.Query("title"),
		Genre:     c.Query("genre"),
		MediaType: models.MediaType(c.Query("media_type")),
	}
	if v := c.Query("min_rating"); v != "" {
		if minRating, err := strconv.ParseFloat(v, 64); err == nil {
			filters.MinRating = minRating
		}
	}
	if v := c.Query("age_restriction"); v != "" {
		if age, err := strconv.Atoi(v); err == nil {
			filters.AgeRestriction = age
		}
	}

	media, err := h.mediaService.Search(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, media)
}

func (h *MediaHandler) writeMediaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMediaNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotMediaCreator):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrTitleRequired), errors.Is(err, service.ErrInvalidMediaType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
