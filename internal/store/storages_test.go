// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PiotMik/devops-capstone-project/internal/config"
	"github.com/PiotMik/devops-capstone-project/internal/logger"
	"github.com/PiotMik/devops-capstone-project/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	storages, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })
	return storages
}

// TestStorages_SQLiteRoundTrip runs every repository operation against a
// real in-memory database.
func TestStorages_SQLiteRoundTrip(t *testing.T) {
	repo := newSQLiteStorages(t).AccountRepository
	ctx := context.Background()

	accounts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	first, err := repo.Create(ctx, testAccount())
	require.NoError(t, err)
	assert.Positive(t, first.ID)
	assert.NotEqual(t, int64(7), first.ID, "requested id must be ignored")
	assert.Equal(t, "2024-01-02", first.DateJoined.String())

	second, err := repo.Create(ctx, models.Account{Name: "Bob", Email: "bob@example.com", Address: "2 Side St", DateJoined: models.Today()})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
	assert.Nil(t, second.PhoneNumber)
	assert.True(t, second.DateJoined.Equal(models.Today()))

	found, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Name, found.Name)
	require.NotNil(t, found.PhoneNumber)
	assert.Equal(t, "555-0100", *found.PhoneNumber)

	found.Name = "Jane Smith"
	found.PhoneNumber = nil
	updated, err := repo.Update(ctx, found)
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, "Jane Smith", updated.Name)
	assert.Nil(t, updated.PhoneNumber)

	accounts, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, first.ID, accounts[0].ID)
	assert.Equal(t, second.ID, accounts[1].ID)

	require.NoError(t, repo.Delete(ctx, first.ID))
	_, err = repo.FindByID(ctx, first.ID)
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), ErrAccountNotFound)
}

func TestStorages_SQLiteMissingIDs(t *testing.T) {
	repo := newSQLiteStorages(t).AccountRepository
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, ErrAccountNotFound)

	missing := testAccount()
	missing.ID = 999
	_, err = repo.Update(ctx, missing)
	assert.ErrorIs(t, err, ErrAccountNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, 999), ErrAccountNotFound)
}

func TestStorages_SQLiteConstraintViolation(t *testing.T) {
	repo := newSQLiteStorages(t).AccountRepository

	account := testAccount()
	account.Name = strings.Repeat("x", 65)

	_, err := repo.Create(context.Background(), account)
	assert.ErrorIs(t, err, ErrInvalidAccount)
}

func TestNewStorages_UnsupportedURI(t *testing.T) {
	storages, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: "mongodb://x"}}, logger.Nop())
	assert.Nil(t, storages)
	assert.ErrorIs(t, err, ErrUnsupportedDatabaseURI)
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
}
