// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the database schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/PiotMik/devops-capstone-project/internal/logger"
)

// SQL dialects with an embedded migration set.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

var (
	ErrNilDB              = errors.New("db is nil")
	ErrUnsupportedDialect = errors.New("unsupported migration dialect")
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var dialects = map[string]struct {
	goose goose.Dialect
	dir   string
}{
	DialectPostgres: {goose: goose.DialectPostgres, dir: "postgres"},
	DialectSQLite:   {goose: goose.DialectSQLite3, dir: "sqlite"},
}

// Migrate applies all pending migrations of the given dialect to db.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	if db == nil {
		return ErrNilDB
	}

	d, ok := dialects[dialect]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}

	fsys, err := fs.Sub(embedMigrations, d.dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", d.dir, err)
	}

	provider, err := goose.NewProvider(d.goose, db, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	log := logger.FromContext(ctx)
	for _, res := range results {
		log.Info().
			Str("dialect", dialect).
			Int64("version", res.Source.Version).
			Str("source", res.Source.Path).
			Dur("duration", res.Duration).
			Msg("migration applied")
	}

	return nil
}
