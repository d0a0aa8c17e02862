package consumer

import (
	"context"
	"encoding/json"

	"github.com/KATBlackCoder/rapportflow/internal/events"
	"github.com/KATBlackCoder/rapportflow/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// errSkip marks a message that can never be handled and is committed anyway.
type errSkip struct{ err error }

func (e errSkip) Error() string { return e.err.Error() }

func ConsumeReportLifecycle(
	ctx context.Context,
	reader MessageReader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.report_lifecycle")
	consume(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) error {
		var event events.ReportLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return errSkip{err}
		}
		if event.EventType == "" {
			event.EventType = header(msg, "event_type")
		}
		return notificationService.HandleReportEvent(ctx, event)
	})
}

func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	consume(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) error {
		if header(msg, "event_type") != events.EmployeeProvisioned {
			return nil
		}
		var event events.EmployeeProvisionedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return errSkip{err}
		}
		return notificationService.HandleEmployeeProvisioned(ctx, event)
	})
}

func consume(
	ctx context.Context,
	reader MessageReader,
	log *zap.Logger,
	handle func(ctx context.Context, msg kafkago.Message) error,
) {
	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		eventType := header(msg, "event_type")
		if err := handle(ctx, msg); err != nil {
			if skip, ok := err.(errSkip); ok {
				log.Error("decode message failed, skipping",
					zap.String("event_type", eventType),
					zap.Int64("offset", msg.Offset),
					zap.Error(skip.err),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}
			log.Error("handle message failed",
				zap.String("event_type", eventType),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Error(err))
			continue
		}

		log.Debug("message handled",
			zap.String("event_type", eventType),
			zap.String("request_id", header(msg, "request_id")),
		)
	}
}

func header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
