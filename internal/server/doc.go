// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the account service.
//
// It owns the server lifecycle: startup, stop-signal handling and graceful
// shutdown bounded by the configured timeout.
package server
