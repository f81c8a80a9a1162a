package handler

import (
	"errors"
	"net/http"
	"strconv"

	"mediahub/internal/api/dto"
	"mediahub/internal/api/middleware"
	"mediahub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// RegisterRoutes registers rating-related routes. Listing a media's ratings
// is public; everything else needs an authenticated caller, and confirmation
// is admin-only.
func (h *RatingHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/media/:media_id/ratings", h.ListByMedia)

	protected.POST("/media/:media_id/ratings", h.Submit)
	protected.GET("/media/:media_id/ratings/me", h.GetUserRating)

	ratings := protected.Group("/ratings")
	{
		ratings.GET("/me", h.GetHistory)
		ratings.GET("/:id", h.GetByID)
		ratings.DELETE("/:id", h.Delete)
		ratings.PUT("/:id/comment", h.UpdateComment)
		ratings.DELETE("/:id/comment", h.DeleteComment)
		ratings.POST("/:id/like", h.Like)
		ratings.POST("/:id/confirm", middleware.RequireRole("admin"), h.Confirm)
	}
}

// Submit creates or replaces the caller's rating for a media entry
// POST /api/media/:media_id/ratings
func (h *RatingHandler) Submit(c *gin.Context) {
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

	var req dto.SubmitRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.Submit(c.Request.Context(), mediaID, username.(string), req.Stars, req.Comment)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStars) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToRatingResponse(rating))
}

// ListByMedia retrieves ratings for a media entry, optionally confirmed only
// GET /api/media/:media_id/ratings?confirmed=true
func (h *RatingHandler) ListByMedia(c *gin.Context) {
	mediaID, err := strconv.ParseInt(c.Param("media_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media ID"})
		return
	}

	confirmedOnly := c.Query("confirmed") == "true"

	ratings, err := h.ratingService.GetByMedia(c.Request.Context(), mediaID, confirmedOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToRatingResponses(ratings))
}

// GetUserRating retrieves the caller's rating for a media entry
// GET /api/media/:media_id/ratings/me
func (h *RatingHandler) GetUserRating(c *gin.Context) {
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

	rating, err := h.ratingService.GetUserRatingForMedia(c.Request.Context(), mediaID, username.(string))
	if err != nil {
		if errors.Is(err, service.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToRatingResponse(rating))
}

// GetHistory retrieves the caller's rating history, newest first
// GET /api/ratings/me
func (h *RatingHandler) GetHistory(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ratings, err := h.ratingService.GetHistory(c.Request.Context(), username.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToRatingResponses(ratings))
}

// GetByID retrieves a single rating
// GET /api/ratings/:id
func (h *RatingHandler) GetByID(c *gin.Context) {
	ratingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating ID"})
		return
	}

	rating, err := h.ratingService.GetByID(c.Request.Context(), ratingID)
	if err != nil {
		if errors.Is(err, service.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToRatingResponse(rating))
}

// Delete removes the caller's rating
// DELETE /api/ratings/:id
func (h *RatingHandler) Delete(c *gin.Context) {
	ratingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating ID"})
		return
	}

	username, exists := c.Get("username")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	deleted, err := h.ratingService.Delete(c.Request.Context(), ratingID, username.(string))
	if err != nil {
		h.writeOwnershipError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// UpdateComment edits only the comment of the caller's rating
// PUT /api/ratings/:id/comment
func (h *RatingHandler) UpdateComment(c *gin.Context) {
	ratingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating ID"})
		return
	}

	username, exists := c.Get("username")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.UpdateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.ratingService.UpdateComment(c.Request.Context(), ratingID, username.(string), req.Comment)
	if err != nil {
		h.writeOwnershipError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// DeleteComment clears the comment of the caller's rating, keeping the stars
// DELETE /api/ratings/:id/comment
func (h *RatingHandler) DeleteComment(c *gin.Context) {
	ratingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating ID"})
		return
	}

	username, exists := c.Get("username")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	deleted, err := h.ratingService.DeleteComment(c.Request.Context(), ratingID, username.(string))
	if err != nil {
		h.writeOwnershipError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// Like increments the like counter of a rating. Any authenticated caller may
// like any rating.
// POST /api/ratings/:id/like
func (h *RatingHandler) Like(c *gin.Context) {
	ratingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating ID"})
		return
	}

	liked, err := h.ratingService.Like(c.Request.Context(), ratingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !liked {
		c.JSON(http.StatusNotFound, gin.H{"error": "rating not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": true})
}

// Confirm releases a rating from moderation (admin only)
// POST /api/ratings/:id/confirm
func (h *RatingHandler) Confirm(c *gin.Context) {
	ratingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating ID"})
		return
	}

	confirmed, err := h.ratingService.Confirm(c.Request.Context(), ratingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !confirmed {
		c.JSON(http.StatusNotFound, gin.H{"error": "rating not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"confirmed": true})
}

func (h *RatingHandler) writeOwnershipError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRatingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotRatingOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
