// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HealthStatusOK is the only status reported by the health endpoint.
const HealthStatusOK = "OK"

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status string `json:"status"`
}

// ErrorResponse is the JSON body returned with every 4xx/5xx response.
type ErrorResponse struct {
	// Status repeats the HTTP status code.
	Status int `json:"status"`

	// Error is the canonical status text, e.g. "Not Found".
	Error string `json:"error"`

	// Message describes what went wrong with this particular request.
	Message string `json:"message"`
}
