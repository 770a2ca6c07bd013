// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/PiotMik/devops-capstone-project/models"
)

// AccountRepository persists [models.Account] records.
//
// Every method returns [ErrAccountNotFound] (possibly wrapped) when the
// requested id does not exist.
type AccountRepository interface {
	// Create inserts a new account and returns it with the assigned id.
	Create(ctx context.Context, account models.Account) (models.Account, error)
	// FindByID returns the account with the given id.
	FindByID(ctx context.Context, id int64) (models.Account, error)
	// Update replaces every mutable column of the account identified by
	// account.ID and returns the stored result.
	Update(ctx context.Context, account models.Account) (models.Account, error)
	// Delete removes the account with the given id.
	Delete(ctx context.Context, id int64) error
	// List returns all accounts ordered by id. It never returns a nil slice
	// on success.
	List(ctx context.Context) ([]models.Account, error)
}

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
