package user

import (
	"github.com/KATBlackCoder/rapportflow/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	users.Use(middleware.ContextLogger(logger))
	users.Use(middleware.RequirePasswordChanged())
	{
		users.PUT("/me/password", middleware.RateLimitByUser(0.2, 3), handler.ChangePassword)
	}
}
