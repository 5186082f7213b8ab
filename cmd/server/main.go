package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/avasilcai/school-admin/internal/adapter"
	"github.com/avasilcai/school-admin/internal/config"
	myHTTP "github.com/avasilcai/school-admin/internal/handler/http"
	"github.com/avasilcai/school-admin/internal/logger"
	"github.com/avasilcai/school-admin/internal/server"
	"github.com/avasilcai/school-admin/internal/service"
	"github.com/avasilcai/school-admin/internal/store"
	"github.com/avasilcai/school-admin/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("school-admin")

	// a missing .env file is fine; env vars may come from the environment
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	var notifier service.Notifier
	if cfg.Mail.GatewayAddress != "" {
		mailGateway, err := adapter.NewMailGateway(cfg.Mail, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating mail gateway")
		}
		notifier = mailGateway
	}

	services := service.NewServices(*storages, *cfg, notifier, log)
	handler := myHTTP.NewHandler(services, log)

	sweeper := workers.NewTokenSweeper(storages.ResetTokenRepository, cfg.Workers.SweepInterval, log)
	workers.NewWorkers(sweeper).Run()

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

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
