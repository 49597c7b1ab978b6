package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Jazz7-Dev/FoodY.com/internal/adapter/http/middleware"
)

// NewRouter mounts the API surface. Routes live under /api to match what
// the browser client calls.
func NewRouter(
	foods *FoodHandler,
	orders *OrderHandler,
	auth *AuthHandler,
	users *UserHandler,
	authz *middleware.Authz,
	log *slog.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware(), middleware.Logging(log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/foods", foods.List)

		api.POST("/auth/register", auth.Register)
		api.POST("/auth/login", auth.Login)

		api.POST("/orders", authz.Require(), orders.PlaceOrder)
		api.GET("/orders/my-orders", authz.Require(), orders.MyOrders)

		api.GET("/users/profile", authz.Require(), users.Profile)
		api.GET("/users/stats", authz.Require(), users.Stats)
	}

	return r
}
