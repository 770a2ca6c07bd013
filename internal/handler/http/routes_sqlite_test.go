// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PiotMik/devops-capstone-project/internal/config"
	"github.com/PiotMik/devops-capstone-project/internal/logger"
	"github.com/PiotMik/devops-capstone-project/internal/service"
	"github.com/PiotMik/devops-capstone-project/internal/store"
	"github.com/PiotMik/devops-capstone-project/models"
)

// newSQLiteRouter serves the real services on top of an in-memory database.
func newSQLiteRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.StructuredConfig{
		App:      config.App{Name: "Account REST API Service", Version: "1.0"},
		Storage:  config.Storage{DB: config.DB{DSN: "sqlite://", MaxOpenConns: 1}},
		Security: defaultSecurity(),
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, cfg.Server, cfg.Security, logger.Nop()).Init()
}

func createAccounts(t *testing.T, router http.Handler, count int) []models.Account {
	t.Helper()

	accounts := make([]models.Account, 0, count)
	for i := 0; i < count; i++ {
		rr := do(t, router, http.MethodPost, "/accounts", map[string]any{
			"name":    fmt.Sprintf("Customer %d", i),
			"email":   fmt.Sprintf("customer%d@example.com", i),
			"address": fmt.Sprintf("%d Main St", i),
		}, "application/json")
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var created models.Account
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
		accounts = append(accounts, created)
	}
	return accounts
}

func TestSQLite_AccountLifecycle(t *testing.T) {
	router := newSQLiteRouter(t)

	rr := do(t, router, http.MethodGet, "/accounts", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = do(t, router, http.MethodPost, "/accounts", map[string]any{
		"id":           1000,
		"name":         "Jane Doe",
		"email":        "jane@example.com",
		"address":      "1 Main St",
		"phone_number": "555-0100",
		"date_joined":  "2024-01-02",
	}, "application/json")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created models.Account
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.NotEqual(t, int64(1000), created.ID)
	assert.Equal(t, fmt.Sprintf("/accounts/%d", created.ID), rr.Header().Get("Location"))
	assert.Equal(t, "2024-01-02", created.DateJoined.String())

	rr = do(t, router, http.MethodGet, rr.Header().Get("Location"), nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var fetched models.Account
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)

	rr = do(t, router, http.MethodPut, fmt.Sprintf("/accounts/%d", created.ID), map[string]any{
		"id":      created.ID + 50,
		"name":    "Jane Smith",
		"email":   "jane@example.com",
		"address": "2 Side St",
	}, "application/json")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var updated models.Account
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Jane Smith", updated.Name)
	assert.Nil(t, updated.PhoneNumber)
	assert.Equal(t, "2024-01-02", updated.DateJoined.String(), "omitted date keeps the stored one")

	rr = do(t, router, http.MethodDelete, fmt.Sprintf("/accounts/%d", created.ID), nil, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = do(t, router, http.MethodGet, fmt.Sprintf("/accounts/%d", created.ID), nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, router, http.MethodDelete, fmt.Sprintf("/accounts/%d", created.ID), nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSQLite_ListAccounts(t *testing.T) {
	router := newSQLiteRouter(t)
	created := createAccounts(t, router, 5)

	rr := do(t, router, http.MethodGet, "/accounts", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var listed []models.Account
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	assert.Equal(t, created, listed)
	for _, account := range listed {
		assert.True(t, account.DateJoined.Equal(models.Today()))
		assert.Nil(t, account.PhoneNumber)
	}
}

func TestSQLite_Rejections(t *testing.T) {
	router := newSQLiteRouter(t)
	existing := createAccounts(t, router, 1)[0]

	tests := []struct {
		name        string
		method      string
		path        string
		body        any
		contentType string
		wantStatus  int
	}{
		{"missing fields", http.MethodPost, "/accounts", map[string]any{"name": "x"}, "application/json", http.StatusBadRequest},
		{"name too long", http.MethodPost, "/accounts", map[string]any{
			"name": strings.Repeat("n", 65), "email": "a@b.c", "address": "x",
		}, "application/json", http.StatusBadRequest},
		{"not json", http.MethodPost, "/accounts", "name=x", "text/html", http.StatusUnsupportedMediaType},
		{"update missing", http.MethodPut, "/accounts/0", map[string]any{
			"name": "x", "email": "y", "address": "z",
		}, "application/json", http.StatusNotFound},
		{"update unknown", http.MethodPut, "/accounts/987654", map[string]any{
			"name": "x", "email": "y", "address": "z",
		}, "application/json", http.StatusNotFound},
		{"update invalid", http.MethodPut, fmt.Sprintf("/accounts/%d", existing.ID), map[string]any{
			"name": "",
		}, "application/json", http.StatusBadRequest},
		{"get unknown", http.MethodGet, "/accounts/987654", nil, "", http.StatusNotFound},
		{"delete list", http.MethodDelete, "/accounts", nil, "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, router, tt.method, tt.path, tt.body, tt.contentType)

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			decodeErrorResponse(t, rr)
		})
	}
}
