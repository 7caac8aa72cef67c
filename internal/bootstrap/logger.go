package bootstrap

import (
	"os"

	"go.uber.org/zap"
)

// InitLogger builds the process-wide logger and installs it as the zap
// global. APP_ENV=production selects the sampled JSON config.
func InitLogger() *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if os.Getenv("APP_ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	return logger
}
