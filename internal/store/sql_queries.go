// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/PiotMik/devops-capstone-project/models"
)

// accountColumns is the column order used by every SELECT and RETURNING
// clause; scanAccount reads in the same order.
var accountColumns = []string{
	"id",
	"name",
	"email",
	"address",
	"phone_number",
	"date_joined",
}

var returningAccount = "RETURNING " + strings.Join(accountColumns, ", ")

func buildInsertAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	return b.Insert(account.TableName()).
		Columns("name", "email", "address", "phone_number", "date_joined").
		Values(account.Name, account.Email, account.Address, account.PhoneNumber, account.DateJoined).
		Suffix(returningAccount).
		ToSql()
}

func buildSelectAccountByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectAccountsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(accountColumns...).
		From(models.Account{}.TableName()).
		OrderBy("id").
		ToSql()
}

// buildUpdateAccountQuery replaces every mutable column; the id is only used
// to find the row.
func buildUpdateAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	return b.Update(account.TableName()).
		Set("name", account.Name).
		Set("email", account.Email).
		Set("address", account.Address).
		Set("phone_number", account.PhoneNumber).
		Set("date_joined", account.DateJoined).
		Where(sq.Eq{"id": account.ID}).
		Suffix(returningAccount).
		ToSql()
}

func buildDeleteAccountQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(models.Account{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Address,
		&account.PhoneNumber,
		&account.DateJoined,
	)
	return account, err
}
