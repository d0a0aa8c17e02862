package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/KATBlackCoder/rapportflow/internal/config"
	"github.com/KATBlackCoder/rapportflow/internal/events"
	"github.com/KATBlackCoder/rapportflow/internal/messaging/kafka/consumer"
	"github.com/KATBlackCoder/rapportflow/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newReader(cfg *config.Config, topic string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          topic,
		GroupID:        cfg.Kafka.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
}

// RunConsumer turns lifecycle events into notifications until SIGINT or
// SIGTERM.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, sqlDB, err := OpenDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	notificationService := notification.NewService(notification.NewRepository(db), logger)

	reportReader := newReader(cfg, events.ReportLifecycleTopic)
	defer reportReader.Close()
	employeeReader := newReader(cfg, events.EmployeeLifecycleTopic)
	defer employeeReader.Close()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		consumer.ConsumeReportLifecycle(gctx, reportReader, notificationService, logger)
		return nil
	})
	g.Go(func() error {
		consumer.ConsumeEmployeeLifecycle(gctx, employeeReader, notificationService, logger)
		return nil
	})
	err = g.Wait()

	log.Info("consumer shutting down")
	return err
}
