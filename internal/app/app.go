package app

import (
	"os"

	"go-onboarding/internal/assessment"
	"go-onboarding/internal/event"
	"go-onboarding/internal/feedback"
	"go-onboarding/internal/identity"
	"go-onboarding/internal/middleware"
	"go-onboarding/internal/notification"
	"go-onboarding/internal/onboarding"
	"go-onboarding/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BuildApp connects the infrastructure, runs migrations and seeds, and
// registers every module's routes on the router.
func BuildApp(router *gin.Engine) error {
	gormDB, sqlDB, err := connectDatabase()
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), connectRetries)
	if err != nil {
		return err
	}

	if err := gormDB.AutoMigrate(
		&identity.User{},
		&onboarding.OnboardingProgress{},
		&onboarding.OnboardingTask{},
		&onboarding.UserTaskProgress{},
		&assessment.SupervisorAssessment{},
		&notification.Notification{},
		&feedback.Feedback{},
		&event.CompanyEvent{},
	); err != nil {
		return err
	}

	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(rate.Limit(20), 40))

	return registerModules(router, sqlDB, gormDB, rdb)
}
