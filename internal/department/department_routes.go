package department

import (
	"github.com/KATBlackCoder/rapportflow/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, logger *zap.Logger) {
	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware())
	departments.Use(middleware.ContextLogger(logger))
	departments.Use(middleware.RequirePasswordChanged())
	{
		departments.GET("", middleware.RateLimitByUser(5, 20), h.List)
	}
}
