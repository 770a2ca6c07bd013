// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/PiotMik/devops-capstone-project/models"
)

// AccountService is the business API over accounts used by the HTTP layer.
type AccountService interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	GetAccount(ctx context.Context, id int64) (models.Account, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	// UpdateAccount replaces the account stored under id; any id carried by
	// account itself is ignored.
	UpdateAccount(ctx context.Context, id int64, account models.Account) (models.Account, error)
	DeleteAccount(ctx context.Context, id int64) error
}

// AppInfoService reports the identity of the running service.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
	GetAppVersion(ctx context.Context) string
}

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// logging or validating.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService // returns a decorated AccountService applying additional behavior
}
