// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command server runs the account REST API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/PiotMik/devops-capstone-project/internal/config"
	"github.com/PiotMik/devops-capstone-project/internal/handler"
	"github.com/PiotMik/devops-capstone-project/internal/logger"
	"github.com/PiotMik/devops-capstone-project/internal/server"
	"github.com/PiotMik/devops-capstone-project/internal/service"
	"github.com/PiotMik/devops-capstone-project/internal/store"
	"github.com/PiotMik/devops-capstone-project/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("account-server")

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("build_version", buildInfo.BuildVersion()).
		Str("build_date", buildInfo.BuildDate()).
		Str("build_commit", buildInfo.BuildCommit()).
		Msg("starting")

	if err := run(os.Args[1:], log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

// run wires the application from args and serves until shutdown. Every
// failure is returned so that deferred cleanup runs before the process exits.
func run(args []string, log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("error setting log level: %w", err)
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Bool("force_https", cfg.Security.ForceHTTPS).
		Msg("received configs")

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}
