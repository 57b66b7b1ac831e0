// Package validation carries input errors from services to handlers.
package validation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error is a malformed or out-of-range input. Message is shown to the client.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

// Is reports whether err is (or wraps) a validation error.
func Is(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

// Required fails when value is blank.
func Required(field, value, message string) error {
	if strings.TrimSpace(value) == "" {
		return New(field, message)
	}
	return nil
}

// Positive fails unless d > 0.
func Positive(field string, d decimal.Decimal, message string) error {
	if !d.IsPositive() {
		return New(field, message)
	}
	return nil
}

// NonNegative fails when d < 0.
func NonNegative(field string, d decimal.Decimal, message string) error {
	if d.IsNegative() {
		return New(field, message)
	}
	return nil
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// ParseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
func ParseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, New(field, "Invalid "+field+": expected YYYY-MM-DD or RFC 3339")
}

// ParseUUID parses an id from a path or query parameter.
func ParseUUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, New(field, "Invalid "+field)
	}
	return id, nil
}
