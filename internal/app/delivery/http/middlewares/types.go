package middlewares

import (
	"confidant-service/internal/app/config"
	"confidant-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func New(logger *zap.Logger, redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:             logger,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}
