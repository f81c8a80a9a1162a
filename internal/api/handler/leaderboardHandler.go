package handler

import (
	"errors"
	"net/http"
	"strconv"

	"mediahub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardService service.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// RegisterRoutes registers the leaderboard route (public)
func (h *LeaderboardHandler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/leaderboard", h.Get)
}

// Get returns the most active raters
// GET /api/leaderboard?limit=10
func (h *LeaderboardHandler) Get(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	entries, err := h.leaderboardService.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLimit) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}
