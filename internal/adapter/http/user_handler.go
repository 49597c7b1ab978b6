package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jazz7-Dev/FoodY.com/internal/adapter/http/middleware"
	domain "github.com/Jazz7-Dev/FoodY.com/internal/entity"
	"github.com/Jazz7-Dev/FoodY.com/internal/logging"
	"github.com/Jazz7-Dev/FoodY.com/internal/usecase"
)

type UserHandler struct {
	profile *usecase.Profile
}

func NewUserHandler(profile *usecase.Profile) *UserHandler {
	return &UserHandler{profile: profile}
}

// Profile handles GET /api/users/profile.
func (h *UserHandler) Profile(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	user, err := h.profile.Get(ctx, middleware.UserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		logging.From(c).Error("fetch profile failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Stats handles GET /api/users/stats.
func (h *UserHandler) Stats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	stats, err := h.profile.Stats(ctx, middleware.UserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		logging.From(c).Error("fetch stats failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
