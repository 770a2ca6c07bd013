// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRequiredField = errors.New("field is required")
	ErrFieldTooLong  = errors.New("field is too long")
	ErrInvalidField  = errors.New("field is invalid")
)
