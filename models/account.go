// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Account is the customer profile persisted by the service.
//
// ID is assigned by the database on creation and never changes afterwards.
// It is serialized as JSON null while the account has not been persisted yet.
type Account struct {
	// ID is the database-assigned primary key.
	ID int64 `json:"id" validate:"gte=0"`

	// Name is the display name of the account holder.
	Name string `json:"name" validate:"required,max=64"`

	// Email is the contact e-mail address.
	Email string `json:"email" validate:"required,max=64"`

	// Address is the postal address.
	Address string `json:"address" validate:"required,max=256"`

	// PhoneNumber is optional and serialized as null when absent.
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=32"`

	// DateJoined is the calendar date the account was opened.
	// A zero value is replaced with the creation date by the service.
	DateJoined Date `json:"date_joined"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// IsPersisted reports whether the account has been assigned an ID.
func (a Account) IsPersisted() bool {
	return a.ID > 0
}

// accountJSON mirrors Account with a nullable ID for the wire format.
type accountJSON struct {
	ID          *int64  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Address     string  `json:"address"`
	PhoneNumber *string `json:"phone_number"`
	DateJoined  Date    `json:"date_joined"`
}

// MarshalJSON writes the account, emitting "id": null for unsaved accounts.
func (a Account) MarshalJSON() ([]byte, error) {
	out := accountJSON{
		Name:        a.Name,
		Email:       a.Email,
		Address:     a.Address,
		PhoneNumber: a.PhoneNumber,
		DateJoined:  a.DateJoined,
	}
	if a.IsPersisted() {
		id := a.ID
		out.ID = &id
	}

	return json.Marshal(out)
}

// UnmarshalJSON reads an account; a null or missing "id" leaves ID at zero.
func (a *Account) UnmarshalJSON(b []byte) error {
	var in accountJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}

	*a = Account{
		Name:        in.Name,
		Email:       in.Email,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
		DateJoined:  in.DateJoined,
	}
	if in.ID != nil {
		a.ID = *in.ID
	}

	return nil
}
