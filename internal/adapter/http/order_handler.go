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

type OrderHandler struct {
	place *usecase.PlaceOrder
	list  *usecase.ListMyOrders
}

func NewOrderHandler(place *usecase.PlaceOrder, list *usecase.ListMyOrders) *OrderHandler {
	return &OrderHandler{place: place, list: list}
}

type placeOrderReq struct {
	Items       []domain.OrderItem `json:"items"`
	TotalAmount float64            `json:"totalAmount"`
	Address     string             `json:"address"`
}

// PlaceOrder handles POST /api/orders. Field validation happens in the
// usecase so the three checks share one collapsed message.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req placeOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	order, err := h.place.Execute(ctx, usecase.PlaceOrderInput{
		UserID:      middleware.UserID(c),
		Items:       req.Items,
		TotalAmount: req.TotalAmount,
		Address:     req.Address,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}
		logging.From(c).Error("place order failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	middleware.OrderPlaced()
	c.JSON(http.StatusCreated, order)
}

// MyOrders handles GET /api/orders/my-orders: the caller's orders with food
// references resolved to full records.
func (h *OrderHandler) MyOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	orders, err := h.list.Execute(ctx, middleware.UserID(c))
	if err != nil {
		logging.From(c).Error("list orders failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
		return
	}
	if orders == nil {
		orders = []domain.PopulatedOrder{}
	}
	c.JSON(http.StatusOK, orders)
}
