// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	ErrInvalidRequestBody   = errors.New("request body is not a valid account")
	ErrRequestBodyTooLarge  = errors.New("request body is too large")
	ErrUnsupportedMediaType = errors.New("content type must be application/json")
	ErrMethodNotAllowed     = errors.New("method is not allowed for this resource")
	ErrRouteNotFound        = errors.New("requested resource was not found")
)
