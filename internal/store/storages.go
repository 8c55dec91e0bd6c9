package store

import (
	"context"
	"fmt"

	"github.com/brightsmile/membership-api/internal/config"
	"github.com/brightsmile/membership-api/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	ApplicationRepository ApplicationRepository
}

// NewStorages connects to PostgreSQL and wires up the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, *DB, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, nil, fmt.Errorf("error connecting to storage: %w", err)
	}

	return &Storages{
		ApplicationRepository: NewApplicationRepository(db, log),
	}, db, nil
}
