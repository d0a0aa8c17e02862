package auth

import (
	"github.com/KATBlackCoder/rapportflow/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the auth endpoints. me, first-login and logout stay
// reachable while the default password is still in use.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		auth.POST("/register", middleware.RateLimitByIP(0.1, 3), handler.Register)
		auth.POST("/refresh", middleware.RateLimitByIP(0.5, 10), handler.RefreshToken)
	}

	session := auth.Group("")
	session.Use(middleware.AuthMiddleware())
	session.Use(middleware.ContextLogger(logger))
	{
		session.GET("/me", middleware.RateLimitByUser(2, 5), handler.Me)
		session.POST("/first-login", middleware.RateLimitByUser(0.2, 3), handler.FirstLogin)
		session.POST("/logout", handler.Logout)
	}
}
