// Package validation provides the field-level checks shared by the
// record types and the auth gate. A failed check aborts the operation
// before anything is written; the Error carries the field name so the
// caller can surface a field-level message.
package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Error describes a single invalid field.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Required fails when value is empty or whitespace.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &Error{Field: field, Reason: "is required"}
	}
	return nil
}

// Invalid builds an Error for a field that is present but wrong.
func Invalid(field, reason string) error {
	return &Error{Field: field, Reason: reason}
}

// OneOf fails unless value is one of allowed.
func OneOf(field, value string, allowed []string) error {
	for _, a := range allowed {
		if a == value {
			return nil
		}
	}
	return &Error{Field: field, Reason: fmt.Sprintf("must be one of %s", strings.Join(allowed, ", "))}
}

// IsValidation reports whether err is (or wraps) a validation Error.
func IsValidation(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}
