package dashboard

import (
	"github.com/KATBlackCoder/rapportflow/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware())
	dashboard.Use(middleware.ContextLogger(logger))
	dashboard.Use(middleware.RequirePasswordChanged())
	{
		dashboard.GET("", middleware.RateLimitByUser(2, 10), handler.Get)
	}
}
