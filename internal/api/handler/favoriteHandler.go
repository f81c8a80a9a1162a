package handler

import (
	"errors"
	"net/http"
	"strconv"

	"mediahub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// RegisterRoutes registers favorite routes (all require authentication)
func (h *FavoriteHandler) RegisterRoutes(protected *gin.RouterGroup) {
	favorites := protected.Group("/favorites")
	{
		favorites.GET("", h.List)
		favorites.POST("/:media_id", h.Add)
		favorites.DELETE("/:media_id", h.Remove)
	}
}

// Add marks a media entry as favorite for the caller
// POST /api/favorites/:media_id
func (h *FavoriteHandler) Add(c *gin.Context) {
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

	if err := h.favoriteService.Add(c.Request.Context(), username.(string), mediaID); err != nil {
		switch {
		case errors.Is(err, service.ErrMediaNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadyFavorite):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "added to favorites"})
}

// Remove unmarks a favorite
// DELETE /api/favorites/:media_id
func (h *FavoriteHandler) Remove(c *gin.Context) {
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

	if err := h.favoriteService.Remove(c.Request.Context(), username.(string), mediaID); err != nil {
		if errors.Is(err, service.ErrNotFavorite) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "removed from favorites"})
}

// List retrieves the caller's favorites with media details
// GET /api/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	favorites, err := h.favoriteService.List(c.Request.Context(), username.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, favorites)
}
