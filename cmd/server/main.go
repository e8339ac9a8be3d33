// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/voyager/internal/config"
	"github.com/MKhiriev/voyager/internal/handler"
	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/internal/server"
	"github.com/MKhiriev/voyager/internal/service"
	"github.com/MKhiriev/voyager/internal/store"
	"github.com/MKhiriev/voyager/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const storageTimeout = 30 * time.Second

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("voyager-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Msg("received configs")

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer closeStorages(storages, log)

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
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

	srv.RunServer()
}

func closeStorages(storages *store.Storages, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	if err := storages.Close(ctx); err != nil {
		log.Err(err).Msg("error closing storages")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
