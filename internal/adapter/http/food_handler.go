package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/Jazz7-Dev/FoodY.com/internal/entity"
	"github.com/Jazz7-Dev/FoodY.com/internal/logging"
	"github.com/Jazz7-Dev/FoodY.com/internal/usecase"
)

type FoodHandler struct {
	catalog *usecase.Catalog
}

func NewFoodHandler(catalog *usecase.Catalog) *FoodHandler {
	return &FoodHandler{catalog: catalog}
}

// List handles GET /api/foods.
func (h *FoodHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	foods, err := h.catalog.List(ctx)
	if err != nil {
		logging.From(c).Error("list foods failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch foods"})
		return
	}
	if foods == nil {
		foods = []domain.Food{}
	}
	c.JSON(http.StatusOK, foods)
}
