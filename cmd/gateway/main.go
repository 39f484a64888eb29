package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/storefront-gateway/internal/adapter"
	"github.com/MKhiriev/storefront-gateway/internal/config"
	"github.com/MKhiriev/storefront-gateway/internal/handler"
	"github.com/MKhiriev/storefront-gateway/internal/logger"
	"github.com/MKhiriev/storefront-gateway/internal/resolver"
	"github.com/MKhiriev/storefront-gateway/internal/server"
	"github.com/MKhiriev/storefront-gateway/internal/service"
	"github.com/MKhiriev/storefront-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("gateway")
	cfg, err := config.GetGatewayConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	urlResolver, err := resolver.New(cfg.Backend.Origin, cfg.Backend.APIVersion)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating URL resolver")
	}

	backend := adapter.NewHTTPBackendAdapter(urlResolver, cfg.Backend.RequestTimeout, log)

	services, err := service.NewServices(backend, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
