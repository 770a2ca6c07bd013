// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/PiotMik/devops-capstone-project/models"
)

// Field name constants used to restrict validation to a subset of the
// account fields. They match the JSON names of [models.Account].
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldEmail       = "email"
	FieldAddress     = "address"
	FieldPhoneNumber = "phone_number"
)

// accountFields maps the public field names to the struct field names the
// validate tags live on.
var accountFields = map[string]string{
	FieldID:          "ID",
	FieldName:        "Name",
	FieldEmail:       "Email",
	FieldAddress:     "Address",
	FieldPhoneNumber: "PhoneNumber",
}

var defaultAccountFields = []string{FieldName, FieldEmail, FieldAddress, FieldPhoneNumber}

// AccountValidator implements [Validator] for [models.Account] using the
// `validate` struct tags on the model.
type AccountValidator struct {
	validate *validator.Validate
}

// NewAccountValidator constructs an [AccountValidator]. Violations are
// reported under the JSON field names.
func NewAccountValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &AccountValidator{validate: v}
}

// Validate checks an account (value or pointer). Without fields, name,
// email, address and phone_number are checked; the id is only checked when
// asked for explicitly.
//
// Every violated field is reported: the result joins one error per field,
// each wrapping [ErrRequiredField], [ErrFieldTooLong] or [ErrInvalidField].
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Account:
		return v.validateAccount(ctx, value, fields...)
	case *models.Account:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateAccount(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateAccount(ctx context.Context, account models.Account, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultAccountFields
	}

	structFields := make([]string, 0, len(fields))
	for _, f := range fields {
		structField, ok := accountFields[f]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		structFields = append(structFields, structField)
	}

	err := v.validate.StructPartialCtx(ctx, account, structFields...)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]error, 0, len(validationErrors))
	for _, fe := range validationErrors {
		errs = append(errs, fieldError(fe))
	}

	return errors.Join(errs...)
}

func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s", ErrRequiredField, fe.Field())
	case "max":
		return fmt.Errorf("%w: %s must be at most %s characters", ErrFieldTooLong, fe.Field(), fe.Param())
	default:
		return fmt.Errorf("%w: %s failed %q", ErrInvalidField, fe.Field(), fe.Tag())
	}
}
