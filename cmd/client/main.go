package main

import (
	"fmt"

	"github.com/neurox/neurox2-client/internal/adapter"
	"github.com/neurox/neurox2-client/internal/client"
	"github.com/neurox/neurox2-client/internal/config"
	"github.com/neurox/neurox2-client/internal/logger"
	"github.com/neurox/neurox2-client/internal/service"
	"github.com/neurox/neurox2-client/internal/store"
	"github.com/neurox/neurox2-client/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("neurox2-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	wellnessAdapter, err := adapter.NewHTTPWellnessAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create wellness adapter")
	}

	journal, err := store.NewJournalStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create journal storage")
	}

	services, err := service.NewClientServices(journal, wellnessAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
