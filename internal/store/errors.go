// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountNotFound is returned when a read, update or delete targets an
	// account id that does not exist.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrInvalidAccount is returned when the database rejects an account
	// because a column constraint (not-null, length, check) was violated.
	ErrInvalidAccount = errors.New("account violates a database constraint")

	// ErrUnsupportedDatabaseURI is returned when the scheme of the configured
	// database URI does not select any known driver.
	ErrUnsupportedDatabaseURI = errors.New("unsupported database uri")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan account row")

	// ErrScanningRows is returned when multi-row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan account rows")
)
