// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/PiotMik/devops-capstone-project/internal/logger"
	"github.com/PiotMik/devops-capstone-project/internal/store"
	"github.com/PiotMik/devops-capstone-project/models"
)

type accountService struct {
	accountRepository store.AccountRepository

	logger *logger.Logger
}

func NewAccountService(accountRepository store.AccountRepository, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		logger:            logger,
	}
}

// CreateAccount stores a new account. The id is always assigned by the
// database and a missing join date becomes today.
func (s *accountService) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	account.ID = 0
	if account.DateJoined.IsZero() {
		account.DateJoined = models.Today()
	}

	return s.accountRepository.Create(ctx, account)
}

func (s *accountService) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	return s.accountRepository.FindByID(ctx, id)
}

func (s *accountService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return s.accountRepository.List(ctx)
}

// UpdateAccount replaces the account stored under id. A missing join date
// keeps the stored one.
func (s *accountService) UpdateAccount(ctx context.Context, id int64, account models.Account) (models.Account, error) {
	account.ID = id

	if account.DateJoined.IsZero() {
		current, err := s.accountRepository.FindByID(ctx, id)
		if err != nil {
			return models.Account{}, fmt.Errorf("error reading account before update: %w", err)
		}
		account.DateJoined = current.DateJoined
	}

	return s.accountRepository.Update(ctx, account)
}

func (s *accountService) DeleteAccount(ctx context.Context, id int64) error {
	return s.accountRepository.Delete(ctx, id)
}
