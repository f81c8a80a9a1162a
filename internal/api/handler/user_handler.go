package handler

import (
	"errors"
	"net/http"

	"mediahub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers user profile routes (authenticated)
func (h *UserHandler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/users/me", h.GetProfile)
}

// GetProfile returns the caller's profile with activity stats
// GET /api/users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), username.(string))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}
