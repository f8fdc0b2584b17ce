package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sealed-vitae/internal/adapter"
	"github.com/MKhiriev/sealed-vitae/internal/config"
	"github.com/MKhiriev/sealed-vitae/internal/crypto"
	"github.com/MKhiriev/sealed-vitae/internal/handler"
	"github.com/MKhiriev/sealed-vitae/internal/logger"
	"github.com/MKhiriev/sealed-vitae/internal/server"
	"github.com/MKhiriev/sealed-vitae/internal/service"
	"github.com/MKhiriev/sealed-vitae/internal/store"
	"github.com/MKhiriev/sealed-vitae/internal/unlock"
	"github.com/MKhiriev/sealed-vitae/internal/validators"
	"github.com/MKhiriev/sealed-vitae/internal/workers"
	"github.com/MKhiriev/sealed-vitae/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("sealed-vitae-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	var source adapter.BundleSource
	if cfg.Adapter.BundleURL != "" {
		source, err = adapter.NewHTTPBundleSource(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating bundle source")
		}
	}

	var engineOpts []unlock.Option
	if cfg.Unlock.Parallelism > 0 {
		engineOpts = append(engineOpts, unlock.WithParallelism(cfg.Unlock.Parallelism))
	}
	engine := unlock.NewEngine(crypto.NewKeyChainService(), validators.NewRecordValidator(), log, engineOpts...)

	services, err := service.NewServices(storages, source, engine, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(
		workers.NewBundleRefresher(services.UnlockService, cfg.Workers.RefreshInterval, log),
	)
	backgroundWorkers.Run(ctx)

	srv.RunServer(ctx)

	cancel()
	backgroundWorkers.Wait()
}

func printBuildInfo() models.AppBuildInfo {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(info)
	return info
}
