// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PiotMik/devops-capstone-project/models"
)

func ptr(s string) *string { return &s }

func validAccount() models.Account {
	return models.Account{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Address:     "1 Main St",
		PhoneNumber: ptr("555-0100"),
		DateJoined:  models.Today(),
	}
}

func TestNewAccountValidator(t *testing.T) {
	require.NotNil(t, NewAccountValidator())
}

func TestAccountValidator_Dispatch(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()
	account := validAccount()

	assert.NoError(t, v.Validate(ctx, account))
	assert.NoError(t, v.Validate(ctx, &account))
	assert.ErrorIs(t, v.Validate(ctx, "account"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, (*models.Account)(nil)), ErrUnsupportedType)
}

func TestAccountValidator_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(a *models.Account)
		wantErrs []error
		contains []string
	}{
		{
			name:   "valid",
			mutate: func(*models.Account) {},
		},
		{
			name:   "phone number is optional",
			mutate: func(a *models.Account) { a.PhoneNumber = nil },
		},
		{
			name:   "fields at max length",
			mutate: func(a *models.Account) { a.Name = strings.Repeat("n", 64); a.Address = strings.Repeat("a", 256) },
		},
		{
			name:     "missing name",
			mutate:   func(a *models.Account) { a.Name = "" },
			wantErrs: []error{ErrRequiredField},
			contains: []string{"name"},
		},
		{
			name:     "missing every required field",
			mutate:   func(a *models.Account) { a.Name, a.Email, a.Address = "", "", "" },
			wantErrs: []error{ErrRequiredField},
			contains: []string{"name", "email", "address"},
		},
		{
			name:     "email too long",
			mutate:   func(a *models.Account) { a.Email = strings.Repeat("e", 65) },
			wantErrs: []error{ErrFieldTooLong},
			contains: []string{"email must be at most 64 characters"},
		},
		{
			name:     "phone too long",
			mutate:   func(a *models.Account) { a.PhoneNumber = ptr(strings.Repeat("5", 33)) },
			wantErrs: []error{ErrFieldTooLong},
			contains: []string{"phone_number"},
		},
		{
			name:     "mixed violations",
			mutate:   func(a *models.Account) { a.Name = ""; a.Address = strings.Repeat("a", 257) },
			wantErrs: []error{ErrRequiredField, ErrFieldTooLong},
			contains: []string{"name", "address"},
		},
		{
			name:   "multi-byte characters count as one",
			mutate: func(a *models.Account) { a.Name = strings.Repeat("ł", 64) },
		},
	}

	v := NewAccountValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := validAccount()
			tt.mutate(&account)

			err := v.Validate(context.Background(), account)
			if len(tt.wantErrs) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestAccountValidator_FieldScoping(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	account := validAccount()
	account.Name = ""
	account.Email = ""

	err := v.Validate(ctx, account, FieldAddress, FieldPhoneNumber)
	assert.NoError(t, err)

	err = v.Validate(ctx, account, FieldEmail)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
	assert.NotContains(t, err.Error(), "name")
}

func TestAccountValidator_ID(t *testing.T) {
	v := NewAccountValidator()
	account := validAccount()
	account.ID = -1

	assert.NoError(t, v.Validate(context.Background(), account))
	assert.ErrorIs(t, v.Validate(context.Background(), account, FieldID), ErrInvalidField)
}

func TestAccountValidator_UnknownField(t *testing.T) {
	err := NewAccountValidator().Validate(context.Background(), validAccount(), "nickname")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Contains(t, err.Error(), "nickname")
}
