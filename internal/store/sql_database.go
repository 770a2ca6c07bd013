// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/PiotMik/devops-capstone-project/internal/config"
	"github.com/PiotMik/devops-capstone-project/internal/logger"
	"github.com/PiotMik/devops-capstone-project/migrations"
)

// Driver names registered with database/sql.
const (
	driverPostgres = "pgx"
	driverSQLite   = "sqlite3"
)

// DB wraps the connection pool together with everything the repositories
// need to talk to it: the dialect-specific query builder and error
// classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the database selected by the scheme of cfg.DSN and verifies
// the connection.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driver, dataSource, err := parseDatabaseURI(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewDB").Msg("cannot select database driver")
		return nil, err
	}

	switch driver {
	case driverSQLite:
		return NewConnectSQLite(ctx, dataSource, log)
	default:
		return NewConnectPostgres(ctx, cfg, log)
	}
}

// Migrate applies the embedded schema migrations for the connected dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect())
}

// Driver returns the database/sql driver name in use.
func (db *DB) Driver() string {
	return db.driver
}

func (db *DB) dialect() string {
	if db.driver == driverSQLite {
		return migrations.DialectSQLite
	}
	return migrations.DialectPostgres
}

// wrapError attaches sentinel to err unless the classifier recognises err as
// a constraint violation, in which case [ErrInvalidAccount] is used instead.
func (db *DB) wrapError(sentinel, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == InvalidData {
		return fmt.Errorf("%w: %w", ErrInvalidAccount, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// parseDatabaseURI picks the driver from the URI scheme and returns the data
// source name the driver expects.
func parseDatabaseURI(uri string) (driver, dataSource string, err error) {
	lower := strings.ToLower(uri)

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return driverPostgres, uri, nil
	case strings.HasPrefix(lower, "sqlite://"):
		dataSource = uri[len("sqlite://"):]
		if dataSource == "" {
			dataSource = ":memory:"
		}
		return driverSQLite, dataSource, nil
	case strings.HasPrefix(lower, "file:"), lower == ":memory:":
		return driverSQLite, uri, nil
	}

	return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDatabaseURI, redactURI(uri))
}

// redactURI keeps only the scheme of uri so credentials never reach logs.
func redactURI(uri string) string {
	if i := strings.Index(uri, "://"); i >= 0 {
		return uri[:i+3] + "…"
	}
	if len(uri) > 8 {
		return uri[:8] + "…"
	}
	return uri
}
