// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/PiotMik/devops-capstone-project/internal/logger"
	"github.com/PiotMik/devops-capstone-project/internal/validators"
	"github.com/PiotMik/devops-capstone-project/models"
)

type accountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

// NewAccountValidationService returns a wrapper that rejects accounts
// violating the field rules before they reach the wrapped service.
func NewAccountValidationService() AccountServiceWrapper {
	return &accountValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *accountValidationService) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	if err := v.validator.Validate(ctx, account); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "accountValidationService.CreateAccount").Msg("account rejected")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidAccount, err)
	}

	return v.inner.CreateAccount(ctx, account)
}

func (v *accountValidationService) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	return v.inner.GetAccount(ctx, id)
}

func (v *accountValidationService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return v.inner.ListAccounts(ctx)
}

func (v *accountValidationService) UpdateAccount(ctx context.Context, id int64, account models.Account) (models.Account, error) {
	if err := v.validator.Validate(ctx, account); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "accountValidationService.UpdateAccount").Int64("account_id", id).Msg("account rejected")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidAccount, err)
	}

	return v.inner.UpdateAccount(ctx, id, account)
}

func (v *accountValidationService) DeleteAccount(ctx context.Context, id int64) error {
	return v.inner.DeleteAccount(ctx, id)
}

func (v *accountValidationService) Wrap(inner AccountService) AccountService {
	v.inner = inner
	return v
}
