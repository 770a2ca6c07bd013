// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire and storage format of [Date].
const DateLayout = time.DateOnly

// ErrReservedDate is returned when JSON carries 0001-01-01, the value the
// zero Date stands for. Accepting it would silently turn it into "absent".
var ErrReservedDate = errors.New("date 0001-01-01 is reserved and cannot be set")

// Date is a calendar date without a time of day, always kept in UTC.
//
// It is encoded as "YYYY-MM-DD" in JSON and stored in DATE columns.
// JSON null and an empty string decode to the zero Date; an explicit
// 0001-01-01 is rejected with [ErrReservedDate].
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date in UTC.
func NewDate(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current UTC date.
func Today() Date {
	return NewDate(time.Now())
}

// ParseDate parses s in [DateLayout].
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return NewDate(t), nil
}

// String returns the date formatted as YYYY-MM-DD, or "" for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// Equal reports whether both values denote the same calendar date.
func (d Date) Equal(other Date) bool {
	return d.String() == other.String()
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string in YYYY-MM-DD format: %w", err)
	}

	if s == nil || *s == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(*s)
	if err != nil {
		return err
	}
	if parsed.IsZero() {
		return ErrReservedDate
	}

	*d = parsed
	return nil
}

// Scan implements [sql.Scanner]. PostgreSQL returns DATE columns as
// time.Time; SQLite may hand back either time.Time or the raw text.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) scanText(s string) error {
	if len(s) < len(DateLayout) {
		return fmt.Errorf("cannot scan %q into Date", s)
	}

	parsed, err := ParseDate(s[:len(DateLayout)])
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Value implements [driver.Valuer].
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}
