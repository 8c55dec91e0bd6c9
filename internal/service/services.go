package service

import (
	"github.com/brightsmile/membership-api/internal/config"
	"github.com/brightsmile/membership-api/internal/crypto"
	"github.com/brightsmile/membership-api/internal/logger"
	"github.com/brightsmile/membership-api/internal/notify"
	"github.com/brightsmile/membership-api/internal/store"
)

type Services struct {
	ApplicationService ApplicationService
	AuthService        AuthService
	AppInfoService     AppInfoService
}

func NewServices(
	storages *store.Storages,
	fieldCipher crypto.FieldCipher,
	dispatcher notify.Dispatcher,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ApplicationService: NewApplicationService(storages.ApplicationRepository, fieldCipher, dispatcher, logger),
		AuthService:        NewAuthService(cfg.App, logger),
		AppInfoService:     appInfoService,
	}, nil
}
