package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-onboarding/internal/event"
	"go-onboarding/internal/feedback"
	"go-onboarding/internal/identity"
	"go-onboarding/internal/messaging/kafka"
	"go-onboarding/internal/notification"
	"go-onboarding/internal/scheduler"

	"go.uber.org/zap"
)

// RunScheduler starts the reminder sweeps and blocks until a shutdown signal.
func RunScheduler() error {
	logger := zap.L().Named("app.scheduler")

	gormDB, sqlDB, err := connectDatabase()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	userRepo := identity.NewRepository(gormDB)
	feedbackRepo := feedback.NewRepository(gormDB)
	eventRepo := event.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	notificationService := notification.NewServiceWithOutbox(sqlDB, notificationRepo, outboxRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.New(userRepo, feedbackRepo, eventRepo, notificationService, scheduler.SystemClock())
	sched.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("scheduler shutting down")
	cancel()
	sched.Stop()

	return nil
}
