// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_ = mock // goose issues its own queries; none are expected

	err = Migrate(context.Background(), db, DialectPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(context.Background(), db, DialectPostgres)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilDB)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(context.Background(), db, "oracle")
	assert.ErrorIs(t, err, ErrUnsupportedDialect)
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, DialectSQLite))
	// A second run finds nothing pending.
	require.NoError(t, Migrate(ctx, db, DialectSQLite))

	_, err = db.ExecContext(ctx,
		`INSERT INTO accounts (name, email, address, date_joined) VALUES ('n', 'e', 'a', '2024-01-02')`)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestMigrate_SQLiteEnforcesLengths(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, DialectSQLite))

	long := make([]byte, 65)
	for i := range long {
		long[i] = 'x'
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO accounts (name, email, address, date_joined) VALUES (?, 'e', 'a', '2024-01-02')`, string(long))
	assert.Error(t, err)
}
