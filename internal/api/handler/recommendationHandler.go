package handler

import (
	"errors"
	"net/http"
	"strconv"

	"mediahub/internal/api/dto"
	"mediahub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	recommendationService service.RecommendationService
}

func NewRecommendationHandler(recommendationService service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// RegisterRoutes registers the recommendations route (needs the caller's
// identity, so authenticated)
func (h *RecommendationHandler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/recommendations", h.Get)
}

// Get returns media suggestions for the caller
// GET /api/recommendations?limit=10
func (h *RecommendationHandler) Get(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	media, err := h.recommendationService.Recommend(c.Request.Context(), username.(string), limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLimit) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summaries := make([]dto.MediaSummaryResponse, 0, len(media))
	for i := range media {
		summaries = append(summaries, dto.FromModelToMediaSummary(&media[i]))
	}

	c.JSON(http.StatusOK, summaries)
}
