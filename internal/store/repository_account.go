// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/PiotMik/devops-capstone-project/internal/logger"
	"github.com/PiotMik/devops-capstone-project/models"
)

// accountRepository is the SQL implementation of [AccountRepository]. It
// works against the "accounts" table of either PostgreSQL or SQLite; the
// embedded [*DB] supplies the placeholder format and error classifier.
//
// Writes run in their own transaction which is rolled back unless the
// statement and the commit both succeed.
type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts account and returns the stored row, including the id the
// database assigned. DateJoined is stored as given; the service layer fills
// in a missing date before calling Create.
func (r *accountRepository) Create(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAccountQuery(r.builder, account)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Create").Msg("failed to build insert query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Create").Msg("failed to begin transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	created, err := scanAccount(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Create").Msg("failed to insert account")
		return models.Account{}, r.wrapError(ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "accountRepository.Create").Msg("failed to commit transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Str("func", "accountRepository.Create").Int64("account_id", created.ID).Msg("account created")
	return created, nil
}

// FindByID returns the account with the given id or [ErrAccountNotFound].
func (r *accountRepository) FindByID(ctx context.Context, id int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountByIDQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.FindByID").Msg("failed to build select query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	account, err := scanAccount(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "accountRepository.FindByID").Int64("account_id", id).Msg("account not found")
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "accountRepository.FindByID").Int64("account_id", id).Msg("failed to read account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

// Update overwrites the account identified by account.ID and returns the
// stored row. [ErrAccountNotFound] is returned when no row has that id.
func (r *accountRepository) Update(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAccountQuery(r.builder, account)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Update").Msg("failed to build update query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Update").Msg("failed to begin transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	updated, err := scanAccount(tx.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "accountRepository.Update").Int64("account_id", account.ID).Msg("account not found")
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Update").Int64("account_id", account.ID).Msg("failed to update account")
		return models.Account{}, r.wrapError(ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "accountRepository.Update").Msg("failed to commit transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return updated, nil
}

// Delete removes the account with the given id. Deleting an id that does not
// exist returns [ErrAccountNotFound].
func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAccountQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Delete").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Delete").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Delete").Int64("account_id", id).Msg("failed to delete account")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Delete").Int64("account_id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Debug().Str("func", "accountRepository.Delete").Int64("account_id", id).Msg("account not found")
		return ErrAccountNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "accountRepository.Delete").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// List returns every account ordered by id. An empty table yields an empty,
// non-nil slice.
func (r *accountRepository) List(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountsQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.List").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.List").Msg("failed to execute query for listing accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		account, scanErr := scanAccount(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "accountRepository.List").Msg("failed to scan account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "accountRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	log.Debug().Str("func", "accountRepository.List").Int("count", len(accounts)).Msg("accounts listed")
	return accounts, nil
}
