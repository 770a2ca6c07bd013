// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidAccount = errors.New("invalid account data provided")

	ErrNameIsNotSpecified    = errors.New("app name is not specified")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
