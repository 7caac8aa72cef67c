package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-onboarding/internal/events"
	"go-onboarding/internal/identity"
	"go-onboarding/internal/messaging/kafka/consumer"
	"go-onboarding/internal/onboarding"
	"go-onboarding/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer bootstraps onboarding journeys from employee lifecycle events.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, sqlDB, err := connectDatabase()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), connectRetries)
	if err != nil {
		return err
	}

	userRepo := identity.NewRepository(gormDB)
	onboardingRepo := onboarding.NewRepository(gormDB)
	onboardingService := onboarding.NewService(sqlDB, onboardingRepo, userRepo, rdb)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.EmployeeCreatedTopic,
		GroupID:        "go-onboarding-journey-bootstrap",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeEmployeeLifecycle(ctx, reader, onboardingService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
