package main

import (
	"github.com/KATBlackCoder/rapportflow/internal/app"
	"github.com/KATBlackCoder/rapportflow/internal/bootstrap"
	"github.com/KATBlackCoder/rapportflow/internal/config"
	"github.com/KATBlackCoder/rapportflow/internal/shared/apperror"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadTooling()
	if err != nil {
		panic(err)
	}
	logger, err := bootstrap.NewLogger(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	apperror.Init()

	if err := app.RunConsumer(cfg, logger); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
