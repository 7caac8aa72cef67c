package main

import (
	"go-onboarding/internal/app"
	"go-onboarding/internal/bootstrap"
	"go-onboarding/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger := bootstrap.InitLogger()
	defer logger.Sync()

	apperror.Init()

	if err := app.RunWorker(); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}
