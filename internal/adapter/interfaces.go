// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the account REST API.
//
// [ServerAdapter] hides the transport from callers such as the accountctl
// command. Non-2xx responses are mapped to the sentinel errors of this
// package, so callers can branch with [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/PiotMik/devops-capstone-project/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to a running account service.
type ServerAdapter interface {
	// AppInfo fetches the service name, version and resource paths from GET /.
	AppInfo(ctx context.Context) (models.AppInfo, error)

	// Health calls GET /health.
	Health(ctx context.Context) (models.HealthStatus, error)

	ListAccounts(ctx context.Context) ([]models.Account, error)
	GetAccount(ctx context.Context, id int64) (models.Account, error)

	// CreateAccount posts account and returns the stored record with its
	// assigned id.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// UpdateAccount replaces the account stored under id.
	UpdateAccount(ctx context.Context, id int64, account models.Account) (models.Account, error)

	DeleteAccount(ctx context.Context, id int64) error
}
