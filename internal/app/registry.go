package app

import (
	"context"
	"database/sql"

	"go-onboarding/internal/assessment"
	"go-onboarding/internal/event"
	"go-onboarding/internal/feedback"
	"go-onboarding/internal/identity"
	"go-onboarding/internal/messaging/kafka"
	"go-onboarding/internal/notification"
	"go-onboarding/internal/onboarding"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	userRepo := identity.NewRepository(gormDB)
	onboardingRepo := onboarding.NewRepository(gormDB)
	assessmentRepo := assessment.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	feedbackRepo := feedback.NewRepository(gormDB)
	eventRepo := event.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	notificationService := notification.NewServiceWithOutbox(db, notificationRepo, outboxRepo)
	onboardingService := onboarding.NewService(db, onboardingRepo, userRepo, rdb)
	assessmentService := assessment.NewService(db, assessmentRepo, userRepo, notificationService)
	feedbackService := feedback.NewService(db, feedbackRepo, userRepo)
	eventService := event.NewService(eventRepo)

	if err := onboardingService.SeedDefaultTasks(context.Background()); err != nil {
		return err
	}

	// --- Handlers ---
	onboardingHandler := onboarding.NewHandler(onboardingService)
	assessmentHandler := assessment.NewHandlerWithRedis(assessmentService, rdb)
	notificationHandler := notification.NewHandler(notificationService)
	feedbackHandler := feedback.NewHandler(feedbackService)
	eventHandler := event.NewHandler(eventService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		onboarding.RegisterRoutes(api, onboardingHandler)
		assessment.RegisterRoutes(api, assessmentHandler, rdb)
		notification.RegisterRoutes(api, notificationHandler)
		feedback.RegisterRoutes(api, feedbackHandler)
		event.RegisterRoutes(api, eventHandler)
	}

	return nil
}
