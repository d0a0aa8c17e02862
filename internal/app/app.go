package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/KATBlackCoder/rapportflow/internal/auth"
	"github.com/KATBlackCoder/rapportflow/internal/config"
	"github.com/KATBlackCoder/rapportflow/internal/dashboard"
	"github.com/KATBlackCoder/rapportflow/internal/department"
	"github.com/KATBlackCoder/rapportflow/internal/employee"
	"github.com/KATBlackCoder/rapportflow/internal/messaging/kafka"
	"github.com/KATBlackCoder/rapportflow/internal/middleware"
	"github.com/KATBlackCoder/rapportflow/internal/notification"
	"github.com/KATBlackCoder/rapportflow/internal/position"
	"github.com/KATBlackCoder/rapportflow/internal/provisioning"
	"github.com/KATBlackCoder/rapportflow/internal/questionnaire"
	"github.com/KATBlackCoder/rapportflow/internal/rbac"
	"github.com/KATBlackCoder/rapportflow/internal/rbac/infra"
	"github.com/KATBlackCoder/rapportflow/internal/report"
	"github.com/KATBlackCoder/rapportflow/internal/shared/connection"
	"github.com/KATBlackCoder/rapportflow/internal/shared/counter"
	"github.com/KATBlackCoder/rapportflow/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the shared connections of one process.
type Infra struct {
	DB    *gorm.DB
	SQLDB *sql.DB
	Redis *redis.Client
}

func (i *Infra) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.SQLDB != nil {
		_ = i.SQLDB.Close()
	}
}

// OpenDatabase connects the configured database and migrates it when
// DB_AUTO_MIGRATE is set.
func OpenDatabase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*gorm.DB, *sql.DB, error) {
	db, err := connection.ConnectDatabase(cfg.Database, 5)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	if cfg.App.AutoMigrate {
		if err := Migrate(ctx, db, logger); err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}
	}
	return db, sqlDB, nil
}

func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (*Infra, error) {
	db, sqlDB, err := OpenDatabase(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, 5)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("redis: %w", err)
	}

	infra := &Infra{DB: db, SQLDB: sqlDB, Redis: rdb}
	if err := registerModules(router, infra, cfg, logger); err != nil {
		infra.Close()
		return nil, err
	}
	return infra, nil
}

func registerModules(router *gin.Engine, in *Infra, cfg *config.Config, logger *zap.Logger) error {
	db, sqlDB, rdb := in.DB, in.SQLDB, in.Redis

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(db)
	userRepo := user.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	questionnaireRepo := questionnaire.NewRepository(db)
	reportRepo := report.NewRepository(db)
	dashboardRepo := dashboard.NewRepository(db)
	notificationRepo := notification.NewRepository(db)
	departmentRepo := department.NewRepository(db)
	counterRepo := counter.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, rules, err := infra.NewDefaultEnforcer()
	if err != nil {
		return fmt.Errorf("rbac enforcer: %w", err)
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, rules, logger)

	// --- Services ---
	tokens := auth.TokenConfig{
		Secret:     cfg.JWT.Secret,
		AccessTTL:  cfg.JWT.AccessExpiration,
		RefreshTTL: cfg.JWT.RefreshExpiration,
	}
	provisioningService := provisioning.NewService(sqlDB, userRepo, employeeRepo, counterRepo, outboxRepo, rdb, logger)
	authService := auth.NewService(userRepo, provisioningService, tokens, logger)
	userService := user.NewService(userRepo, logger)
	employeeService := employee.NewService(sqlDB, employeeRepo, rdb, logger)
	questionnaireService := questionnaire.NewService(sqlDB, questionnaireRepo, rdb, logger)
	reportService := report.NewService(sqlDB, reportRepo, questionnaireRepo, outboxRepo, logger)
	dashboardService := dashboard.NewService(dashboardRepo, reportRepo, rbacService, logger)
	notificationService := notification.NewService(notificationRepo, logger)
	departmentService := department.NewService(departmentRepo, rdb, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, tokens, logger)
	userHandler := user.NewHandler(userService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	questionnaireHandler := questionnaire.NewHandler(questionnaireService, logger)
	reportHandler := report.NewHandler(reportService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)
	notificationHandler := notification.NewHandler(notificationService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)
	departmentHandler := department.NewHandler(departmentService)
	positionHandler := position.NewHandler()

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, logger)
		user.RegisterRoutes(api, userHandler, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		questionnaire.RegisterRoutes(api, questionnaireHandler, rbacService, logger)
		report.RegisterRoutes(api, reportHandler, rbacService, rdb, logger)
		dashboard.RegisterRoutes(api, dashboardHandler, logger)
		notification.RegisterRoutes(api, notificationHandler, logger)
		rbac.RegisterRoutes(api, rbacHandler, logger)
		department.RegisterRoutes(api, departmentHandler, logger)
		position.RegisterRoutes(api, positionHandler, logger)
	}

	return nil
}
