package logger

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/config"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/constvars"
)

// NewLogrusLogger backs the plain request-line access log.
func NewLogrusLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()
	switch internalConfig.App.Env {
	case constvars.AppEnvProduction:
		logger.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile("logrus.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			logger.SetOutput(file)
		} else {
			logger.Info("Failed to log to file, using default stderr")
		}
	default:
		logger.SetFormatter(&logrus.TextFormatter{})
	}
	return logger
}
