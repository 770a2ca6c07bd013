// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"dario.cat/mergo"
)

// Client defaults.
const (
	DefaultClientAddress        = "http://localhost:8080"
	DefaultClientRequestTimeout = 10 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the account service.
	// Env: ACCOUNTS_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ACCOUNTS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration of the accountctl command line client.
type ClientConfig struct {
	// Adapter contains the service address and timeout.
	Adapter ClientAdapter `envPrefix:"ACCOUNTS_"`
}

// GetClientConfig builds and validates the client configuration from
// defaults, environment variables and the flags in args. Flags win over the
// environment.
//
// The positional arguments left after flag parsing (the subcommand and its
// operands) are returned alongside the config.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    DefaultClientAddress,
			RequestTimeout: DefaultClientRequestTimeout,
		},
	}

	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, nil, err
	}

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	flagCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	for _, src := range []*ClientConfig{envCfg, flagCfg} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return cfg, rest, cfg.validate()
}

func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	var address string
	var timeout time.Duration

	fs := flag.NewFlagSet("accountctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&address, "a", "", "Account service base URL")
	fs.DurationVar(&timeout, "t", 0, "Request timeout (e.g., 5s)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    address,
			RequestTimeout: timeout,
		},
	}, fs.Args(), nil
}
