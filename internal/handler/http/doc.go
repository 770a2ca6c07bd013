// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the account service.
//
// It wires the chi router, the account handlers and the middleware chain.
// Security headers, HTTPS redirection, CORS, request tracing, access logging,
// panic recovery, timeouts and response compression are applied here before
// requests reach the service layer.
package http
