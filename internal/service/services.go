// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/PiotMik/devops-capstone-project/internal/config"
	"github.com/PiotMik/devops-capstone-project/internal/logger"
	"github.com/PiotMik/devops-capstone-project/internal/store"
)

type Services struct {
	AccountService AccountService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	accountService := NewAccountValidationService().Wrap(
		NewAccountService(storages.AccountRepository, logger),
	)

	return &Services{
		AccountService: accountService,
		AppInfoService: appInfoService,
	}, nil
}
