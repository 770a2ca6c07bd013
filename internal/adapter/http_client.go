// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PiotMik/devops-capstone-project/internal/config"
	"github.com/PiotMik/devops-capstone-project/internal/logger"
	"github.com/PiotMik/devops-capstone-project/internal/utils"
	"github.com/PiotMik/devops-capstone-project/models"
)

const accountsPath = "/accounts"

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter builds the REST implementation of [ServerAdapter].
// The address may omit the scheme, in which case http:// is assumed.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) AppInfo(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/")
	if err != nil {
		return models.AppInfo{}, fmt.Errorf("app info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppInfo{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/health")
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthStatus{}, err
	}

	return status, nil
}

func (h *httpServerAdapter) ListAccounts(ctx context.Context) ([]models.Account, error) {
	accounts := []models.Account{}

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&accounts).
		Get(accountsPath)
	if err != nil {
		return nil, fmt.Errorf("list accounts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().Int("count", len(accounts)).Msg("accounts received")
	return accounts, nil
}

func (h *httpServerAdapter) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	var account models.Account

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&account).
		Get(accountPath(id))
	if err != nil {
		return models.Account{}, fmt.Errorf("get account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

func (h *httpServerAdapter) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	var created models.Account

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(account).
		SetResult(&created).
		Post(accountsPath)
	if err != nil {
		return models.Account{}, fmt.Errorf("create account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	h.logger.Debug().
		Int64("account_id", created.ID).
		Str("location", resp.Header().Get("Location")).
		Msg("account created")
	return created, nil
}

func (h *httpServerAdapter) UpdateAccount(ctx context.Context, id int64, account models.Account) (models.Account, error) {
	var updated models.Account

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(account).
		SetResult(&updated).
		Put(accountPath(id))
	if err != nil {
		return models.Account{}, fmt.Errorf("update account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	return updated, nil
}

func (h *httpServerAdapter) DeleteAccount(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(accountPath(id))
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}

	return mapHTTPError(resp)
}

func accountPath(id int64) string {
	return accountsPath + "/" + strconv.FormatInt(id, 10)
}
