// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PiotMik/devops-capstone-project/internal/adapter"
	"github.com/PiotMik/devops-capstone-project/models"
)

var (
	errNoCommand      = errors.New("no command given")
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("wrong number of arguments")
	errInvalidID      = errors.New("account id must be a positive integer")
	errInvalidJSON    = errors.New("account must be a JSON object")
)

type cli struct {
	adapter adapter.ServerAdapter

	stdin  io.Reader
	stdout io.Writer
}

func newCLI(a adapter.ServerAdapter, stdin io.Reader, stdout io.Writer) *cli {
	return &cli{adapter: a, stdin: stdin, stdout: stdout}
}

type command struct {
	usage string
	nArgs int
	run   func(c *cli, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"info":   {usage: "info", run: (*cli).info},
	"health": {usage: "health", run: (*cli).health},
	"list":   {usage: "list", run: (*cli).list},
	"get":    {usage: "get <id>", nArgs: 1, run: (*cli).get},
	"create": {usage: "create <json|->", nArgs: 1, run: (*cli).create},
	"update": {usage: "update <id> <json|->", nArgs: 2, run: (*cli).update},
	"delete": {usage: "delete <id>", nArgs: 1, run: (*cli).delete},
}

// run dispatches args[0] to its command.
func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errNoCommand
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownCommand, args[0])
	}
	if len(args)-1 != cmd.nArgs {
		return fmt.Errorf("%w: usage: %s", errUsage, cmd.usage)
	}

	return cmd.run(c, ctx, args[1:])
}

func (c *cli) info(ctx context.Context, _ []string) error {
	info, err := c.adapter.AppInfo(ctx)
	if err != nil {
		return err
	}
	return c.print(info)
}

func (c *cli) health(ctx context.Context, _ []string) error {
	status, err := c.adapter.Health(ctx)
	if err != nil {
		return err
	}
	return c.print(status)
}

func (c *cli) list(ctx context.Context, _ []string) error {
	accounts, err := c.adapter.ListAccounts(ctx)
	if err != nil {
		return err
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	return c.print(accounts)
}

func (c *cli) get(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	account, err := c.adapter.GetAccount(ctx, id)
	if err != nil {
		return err
	}
	return c.print(account)
}

func (c *cli) create(ctx context.Context, args []string) error {
	account, err := c.readAccount(args[0])
	if err != nil {
		return err
	}

	created, err := c.adapter.CreateAccount(ctx, account)
	if err != nil {
		return err
	}
	return c.print(created)
}

func (c *cli) update(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	account, err := c.readAccount(args[1])
	if err != nil {
		return err
	}

	updated, err := c.adapter.UpdateAccount(ctx, id, account)
	if err != nil {
		return err
	}
	return c.print(updated)
}

func (c *cli) delete(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	return c.adapter.DeleteAccount(ctx, id)
}

// readAccount decodes an account from arg, or from stdin when arg is "-".
func (c *cli) readAccount(arg string) (models.Account, error) {
	var src io.Reader = strings.NewReader(arg)
	if arg == "-" {
		src = c.stdin
	}

	var account models.Account
	if err := json.NewDecoder(src).Decode(&account); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
	return account, nil
}

func (c *cli) print(v any) error {
	enc := json.NewEncoder(c.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidID, raw)
	}
	return id, nil
}
