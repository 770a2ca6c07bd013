// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/PiotMik/devops-capstone-project/internal/config"
	"github.com/PiotMik/devops-capstone-project/internal/logger"
	"github.com/PiotMik/devops-capstone-project/internal/service"
)

type Handler struct {
	services *service.Services

	security       config.Security
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, server config.Server, security config.Security, logger *logger.Logger) *Handler {
	logger.Info().
		Bool("force_https", security.ForceHTTPS).
		Strs("allowed_origins", security.AllowedOrigins).
		Msg("http handler created")

	return &Handler{
		services:       services,
		security:       security,
		requestTimeout: server.RequestTimeout,
		logger:         logger,
	}
}
