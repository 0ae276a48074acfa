package middlewares

import (
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/services/shared/ratelimiter"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	LoginLimiter   *ratelimiter.LoginLimiter
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, loginLimiter *ratelimiter.LoginLimiter) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		LoginLimiter:   loginLimiter,
	}
}
