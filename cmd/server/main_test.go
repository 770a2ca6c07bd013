// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PiotMik/devops-capstone-project/internal/logger"
)

func TestRun_InvalidFlags(t *testing.T) {
	err := run([]string{"-no-such-flag"}, logger.Nop())

	assert.ErrorContains(t, err, "error getting configs")
}

func TestRun_ReturnsServerStartupError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	done := make(chan error, 1)
	go func() {
		done <- run([]string{"-a", l.Addr().String(), "-d", "sqlite://"}, logger.Nop())
	}()

	select {
	case err = <-done:
		require.Error(t, err)
		assert.ErrorContains(t, err, "HTTP server Listen")
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return on a busy address")
	}
}
