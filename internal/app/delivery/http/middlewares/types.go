package middlewares

import (
	"github.com/sirupsen/logrus"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/config"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/dto/responses"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AccessLog      *logrus.Logger
	InternalConfig *config.InternalConfig
	Renderer       *responses.Renderer
}

func NewMiddlewares(log *zap.Logger, accessLog *logrus.Logger, internalConfig *config.InternalConfig, renderer *responses.Renderer) *Middlewares {
	return &Middlewares{
		Log:            log,
		AccessLog:      accessLog,
		InternalConfig: internalConfig,
		Renderer:       renderer,
	}
}
