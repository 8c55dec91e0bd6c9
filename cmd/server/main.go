package main

import (
	"context"
	"fmt"

	"github.com/brightsmile/membership-api/internal/config"
	"github.com/brightsmile/membership-api/internal/crypto"
	"github.com/brightsmile/membership-api/internal/handler"
	"github.com/brightsmile/membership-api/internal/logger"
	"github.com/brightsmile/membership-api/internal/notify"
	"github.com/brightsmile/membership-api/internal/ratelimit"
	"github.com/brightsmile/membership-api/internal/server"
	"github.com/brightsmile/membership-api/internal/service"
	"github.com/brightsmile/membership-api/internal/store"
	"github.com/brightsmile/membership-api/internal/workers"
	"github.com/brightsmile/membership-api/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("membership-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	ctx := context.Background()

	storages, db, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	fieldCipher, err := crypto.NewFieldCipher(cfg.App.EncryptionSecret, cfg.App.EncryptionSalt)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating field cipher")
	}

	dispatcher := notify.NewEmailDispatcher(cfg.Email, log)
	limiter := ratelimit.NewLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window)

	services, err := service.NewServices(storages, fieldCipher, dispatcher, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, limiter, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(limiter, cfg.RateLimit, log).Run()

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
