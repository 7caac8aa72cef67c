package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-onboarding/internal/events"
	"go-onboarding/internal/onboarding"
	onboardingerrors "go-onboarding/internal/onboarding/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle bootstraps an onboarding journey for every newly
// provisioned employee. Journeys that already exist (replays, duplicate
// events) are skipped and the message committed.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	onboardingService onboarding.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = onboardingService.BootstrapJourney(ctx, event.EmployeeID)
		if err != nil {
			if errors.Is(err, onboardingerrors.ErrJourneyAlreadyExists) {
				log.Warn("journey already exists for event, skipping",
					zap.String("employee_id", event.EmployeeID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("bootstrap onboarding journey failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("onboarding journey bootstrapped from employee_created event",
			zap.String("employee_id", event.EmployeeID),
		)
	}
}
