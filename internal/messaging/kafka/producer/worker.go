package producer

import (
	"context"
	"time"

	"go-onboarding/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	defaultPollInterval = 3 * time.Second
	relayBatchSize      = 50
)

// ProcessOutboxEvents polls outbox_events and relays due rows to Kafka until
// ctx is cancelled. Delivery failures mark the row failed and leave it for a
// later poll; the loop itself never exits on error.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer *kafkago.Writer,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox relay started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox relay stopped")
			return
		case <-ticker.C:
			if err := relayBatch(ctx, repo, writer, log); err != nil {
				log.Error("outbox poll failed", zap.Error(err))
			}
		}
	}
}

func relayBatch(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer *kafkago.Writer,
	log *zap.Logger,
) error {
	events, err := repo.ListPending(ctx, relayBatchSize)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	sent := 0
	for _, event := range events {
		if relayOne(ctx, repo, writer, log, event) {
			sent++
		}
	}

	log.Info("outbox batch relayed",
		zap.Int("due", len(events)),
		zap.Int("sent", sent),
	)
	return nil
}

func relayOne(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer *kafkago.Writer,
	log *zap.Logger,
	event kafka.OutboxEvent,
) bool {
	if err := publishEvent(ctx, writer, event); err != nil {
		log.Error("outbox publish failed",
			zap.String("outbox_id", event.ID),
			zap.String("topic", event.Topic),
			zap.String("event_type", event.EventType),
			zap.Int("retry_count", event.RetryCount),
			zap.Error(err),
		)
		_ = repo.MarkFailed(ctx, event.ID, err.Error())
		return false
	}

	if err := repo.MarkSent(ctx, event.ID); err != nil {
		// Already on the wire; the row will come around again and consumers
		// must tolerate the duplicate.
		log.Error("outbox mark sent failed",
			zap.String("outbox_id", event.ID),
			zap.Error(err),
		)
		return false
	}
	return true
}
