package report

import (
	"github.com/KATBlackCoder/rapportflow/internal/domain"
	"github.com/KATBlackCoder/rapportflow/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	reports.Use(middleware.ContextLogger(logger))
	reports.Use(middleware.RequirePasswordChanged())
	{
		reports.GET("/menu", middleware.RateLimitByUser(5, 20), handler.Menu)
		reports.GET("/questionnaires", middleware.RateLimitByUser(3, 10), handler.Questionnaires)
		reports.GET("/questionnaires/:id", middleware.RateLimitByUser(3, 10), handler.Form)

		reports.POST("",
			middleware.RateLimitByUser(0.5, 5),
			middleware.Idempotency(rdb, logger),
			handler.Submit,
		)

		reports.GET("/mine", middleware.RateLimitByUser(3, 10), handler.Mine)
		reports.GET("/mine/:id", middleware.RateLimitByUser(3, 10), handler.ShowMine)

		reports.GET("/corrections", middleware.RateLimitByUser(3, 10), handler.Corrections)
		reports.GET("/corrections/:id", middleware.RateLimitByUser(3, 10), handler.ShowCorrection)
		reports.PUT("/corrections/:id", middleware.RateLimitByUser(0.5, 5), handler.Resubmit)

		analysis := reports.Group("/analysis")
		{
			analysis.GET("",
				middleware.RateLimitByUser(3, 10),
				middleware.RBACAuthorize(rbacService, domain.ResourceReport, domain.ActionAnalyze),
				handler.Analysis,
			)

			analysis.GET("/export",
				middleware.RateLimitByUser(0.2, 2),
				middleware.RBACAuthorize(rbacService, domain.ResourceReport, domain.ActionExport),
				handler.Export,
			)

			analysis.GET("/:id",
				middleware.RateLimitByUser(3, 10),
				middleware.RBACAuthorize(rbacService, domain.ResourceReport, domain.ActionAnalyze),
				handler.ShowAnalysis,
			)

			analysis.POST("/:id/return",
				middleware.RateLimitByUser(0.5, 5),
				middleware.RBACAuthorize(rbacService, domain.ResourceReport, domain.ActionReview),
				handler.Return,
			)
		}
	}
}
