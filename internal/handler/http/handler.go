package http

import (
	"github.com/brightsmile/membership-api/internal/logger"
	"github.com/brightsmile/membership-api/internal/ratelimit"
	"github.com/brightsmile/membership-api/internal/service"
)

type Handler struct {
	services *service.Services
	limiter  *ratelimit.Limiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, limiter *ratelimit.Limiter, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		limiter:  limiter,
		logger:   logger,
	}
}
