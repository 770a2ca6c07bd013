// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PiotMik/devops-capstone-project/models"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func testAccount() models.Account {
	phone := "555-0100"
	return models.Account{
		ID:          7,
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Address:     "1 Main St",
		PhoneNumber: &phone,
		DateJoined:  models.NewDate(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)),
	}
}

func Test_buildInsertAccountQuery(t *testing.T) {
	account := testAccount()

	query, args, err := buildInsertAccountQuery(dollar, account)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into accounts")
	assert.Contains(t, q, "(name,email,address,phone_number,date_joined)")
	assert.Contains(t, query, "$5")
	assert.NotContains(t, query, "$6")
	assert.True(t, strings.HasSuffix(q, "returning id, name, email, address, phone_number, date_joined"))

	require.Len(t, args, 5)
	assert.Equal(t, "Jane Doe", args[0])
	assert.Equal(t, "jane@example.com", args[1])
	assert.Equal(t, "1 Main St", args[2])
	assert.Equal(t, account.PhoneNumber, args[3])
	assert.Equal(t, account.DateJoined, args[4])
}

func Test_buildInsertAccountQuery_IgnoresID(t *testing.T) {
	query, args, err := buildInsertAccountQuery(dollar, testAccount())
	require.NoError(t, err)

	assert.NotContains(t, strings.ToLower(query), "(id,")
	assert.NotContains(t, args, int64(7))
}

func Test_buildSelectAccountByIDQuery(t *testing.T) {
	tests := []struct {
		name        string
		builder     sq.StatementBuilderType
		placeholder string
	}{
		{name: "postgres", builder: dollar, placeholder: "id = $1"},
		{name: "sqlite", builder: question, placeholder: "id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectAccountByIDQuery(tt.builder, 42)
			require.NoError(t, err)

			assert.Equal(t,
				"SELECT id, name, email, address, phone_number, date_joined FROM accounts WHERE "+tt.placeholder,
				query)
			assert.Equal(t, []any{int64(42)}, args)
		})
	}
}

func Test_buildSelectAccountsQuery(t *testing.T) {
	query, args, err := buildSelectAccountsQuery(dollar)
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, name, email, address, phone_number, date_joined FROM accounts ORDER BY id", query)
	assert.Empty(t, args)
}

func Test_buildUpdateAccountQuery(t *testing.T) {
	account := testAccount()

	query, args, err := buildUpdateAccountQuery(dollar, account)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE accounts SET name = $1, email = $2, address = $3, phone_number = $4, date_joined = $5 "+
			"WHERE id = $6 RETURNING id, name, email, address, phone_number, date_joined",
		query)
	require.Len(t, args, 6)
	assert.Equal(t, int64(7), args[5])
}

func Test_buildDeleteAccountQuery(t *testing.T) {
	query, args, err := buildDeleteAccountQuery(question, 3)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM accounts WHERE id = ?", query)
	assert.Equal(t, []any{int64(3)}, args)
}
