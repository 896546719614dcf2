// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package main

import (
	"context"
	"fmt"

	"github.com/taskdesk/taskdesk/internal/config"
	handlerhttp "github.com/taskdesk/taskdesk/internal/handler/http"
	"github.com/taskdesk/taskdesk/internal/logger"
	"github.com/taskdesk/taskdesk/internal/server"
	"github.com/taskdesk/taskdesk/internal/service"
	"github.com/taskdesk/taskdesk/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("taskdesk-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, cfg.Auth, log)
	handler := handlerhttp.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
