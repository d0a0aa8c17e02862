package questionnaire

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
	questionnaires := r.Group("/questionnaires")
	questionnaires.Use(middleware.AuthMiddleware())
	questionnaires.Use(middleware.ContextLogger(logger))
	questionnaires.Use(middleware.RequirePasswordChanged())
	{
		questionnaires.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceQuestionnaire, domain.ActionRead),
			handler.List,
		)

		// analysis filters need the titles without questionnaire:read
		questionnaires.GET("/published",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, domain.ResourceReport, domain.ActionAnalyze),
			handler.Published,
		)

		questionnaires.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceQuestionnaire, domain.ActionRead),
			handler.GetByID,
		)

		questionnaires.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, domain.ResourceQuestionnaire, domain.ActionCreate),
			handler.Create,
		)

		questionnaires.PUT("/:id",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, domain.ResourceQuestionnaire, domain.ActionUpdate),
			handler.Update,
		)

		questionnaires.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceQuestionnaire, domain.ActionDelete),
			handler.Delete,
		)
	}
}
