package producer

import (
	"context"
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	batchSize     = 50
	retryStep     = 15 * time.Second
	maxRetrySteps = 10
)

// Backoff grows linearly with the attempt count and is capped at ten steps.
func Backoff(retryCount int) time.Duration {
	steps := min(max(retryCount+1, 1), maxRetrySteps)
	return time.Duration(steps) * retryStep
}

// Relay moves outbox rows to Kafka. Each row is published at least once.
type Relay struct {
	repo   kafka.OutboxRepository
	writer MessageWriter
	log    *zap.Logger
	now    func() time.Time
}

func NewRelay(repo kafka.OutboxRepository, writer MessageWriter, logger *zap.Logger) *Relay {
	return &Relay{
		repo:   repo,
		writer: writer,
		log:    logger.Named("kafka.producer.relay"),
		now:    time.Now,
	}
}

type flushStats struct {
	sent   int
	failed int
	listed int
}

// Flush publishes one batch of due rows.
func (r *Relay) Flush(ctx context.Context) (flushStats, error) {
	var st flushStats
	pending, err := r.repo.ListPending(ctx, r.now(), batchSize)
	if err != nil {
		return st, err
	}
	st.listed = len(pending)

	for _, event := range pending {
		log := r.log.With(
			zap.String("outbox_id", event.ID),
			zap.String("request_id", event.RequestID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)

		if err := publishEvent(ctx, r.writer, event); err != nil {
			st.failed++
			next := r.now().Add(Backoff(event.RetryCount))
			log.Error("publish outbox event failed",
				zap.Int("retry_count", event.RetryCount),
				zap.Time("next_retry_at", next),
				zap.Error(err),
			)
			if markErr := r.repo.MarkFailed(ctx, event.ID, err.Error(), next); markErr != nil {
				log.Error("record outbox failure failed", zap.Error(markErr))
			}
			continue
		}

		if err := r.repo.MarkSent(ctx, event.ID, r.now()); err != nil {
			log.Error("mark outbox sent failed", zap.Error(err))
			continue
		}
		st.sent++
		log.Debug("outbox event sent")
	}
	return st, nil
}

// Run flushes on every tick until ctx is cancelled. A full batch is
// followed by another flush right away.
func (r *Relay) Run(ctx context.Context, pollInterval time.Duration) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	r.log.Info("outbox relay started", zap.Duration("poll_interval", pollInterval))
	for {
		for {
			st, err := r.Flush(ctx)
			if err != nil {
				if ctx.Err() == nil {
					r.log.Error("flush outbox failed", zap.Error(err))
				}
				break
			}
			if st.sent+st.failed > 0 {
				r.log.Info("outbox flushed", zap.Int("sent", st.sent), zap.Int("failed", st.failed))
			}
			if st.listed < batchSize || ctx.Err() != nil {
				break
			}
		}

		select {
		case <-ctx.Done():
			r.log.Info("outbox relay stopped")
			return
		case <-ticker.C:
		}
	}
}

// ProcessOutboxEvents runs a Relay until ctx is cancelled.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	NewRelay(repo, writer, logger).Run(ctx, pollInterval)
}
