package employee

import (
	"github.com/KATBlackCoder/rapportflow/internal/domain"
	"github.com/KATBlackCoder/rapportflow/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	can := func(action string) gin.HandlerFunc {
		return middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, action)
	}
	reads := middleware.RateLimitByUser(3, 10)
	writes := middleware.RateLimitByUser(0.5, 3)

	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(logger))
	employees.Use(middleware.RequirePasswordChanged())
	{
		employees.GET("", reads, can(domain.ActionRead), handler.List)
		employees.GET("/managers", middleware.RateLimitByUser(5, 20), can(domain.ActionRead), handler.Managers)
		employees.GET("/:id", reads, can(domain.ActionRead), handler.GetByID)
		employees.POST("", writes, can(domain.ActionCreate), handler.Create)
		employees.PUT("/:id", writes, can(domain.ActionUpdate), handler.Update)
		employees.DELETE("/:id", middleware.RateLimitByUser(0.2, 2), can(domain.ActionDelete), handler.Delete)
	}
}
