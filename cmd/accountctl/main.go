// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command accountctl manages accounts of a running account service.
//
// Usage:
//
//	accountctl [-a address] [-t timeout] <command> [arguments]
//
// Commands:
//
//	info                 show service name, version and paths
//	health               check service health
//	list                 list all accounts
//	get <id>             show one account
//	create <json|->      create an account from JSON ("-" reads stdin)
//	update <id> <json|-> replace an account
//	delete <id>          delete an account
//
// Results are printed to stdout as JSON; logs go to stderr.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/PiotMik/devops-capstone-project/internal/adapter"
	"github.com/PiotMik/devops-capstone-project/internal/config"
	"github.com/PiotMik/devops-capstone-project/internal/logger"
)

func main() {
	log := logger.NewConsoleLogger("accountctl", os.Stderr)

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		os.Exit(1)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server adapter")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = newCLI(serverAdapter, os.Stdin, os.Stdout).run(ctx, args); err != nil {
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}
