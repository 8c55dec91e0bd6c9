package handler

import (
	"github.com/brightsmile/membership-api/internal/config"
	"github.com/brightsmile/membership-api/internal/handler/http"
	"github.com/brightsmile/membership-api/internal/logger"
	"github.com/brightsmile/membership-api/internal/ratelimit"
	"github.com/brightsmile/membership-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, limiter *ratelimit.Limiter, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, limiter, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
