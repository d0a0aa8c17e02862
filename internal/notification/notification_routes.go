package notification

import (
	"github.com/KATBlackCoder/rapportflow/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	notifications.Use(middleware.ContextLogger(logger))
	notifications.Use(middleware.RequirePasswordChanged())
	{
		notifications.GET("", middleware.RateLimitByUser(3, 10), handler.List)
		notifications.POST("/:id/read", middleware.RateLimitByUser(3, 10), handler.MarkRead)
	}
}
