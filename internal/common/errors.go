// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
	"strings"
)

// Common application errors.
var (
	// Input errors.
	ErrEmptyDataset     = errors.New("dataset contains no rows")
	ErrUnsupportedInput = errors.New("unsupported input format")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// SchemaError reports mandatory columns missing from the input table.
// It aborts processing before any row is touched.
type SchemaError struct {
	MissingColumns []string
}

func (e *SchemaError) Error() string {
	if len(e.MissingColumns) == 1 {
		return fmt.Sprintf("required column %q not found in the input file", e.MissingColumns[0])
	}
	return fmt.Sprintf("required columns not found in the input file: %s", strings.Join(e.MissingColumns, ", "))
}

// ParseError reports a value that must be a valid date but could not be
// parsed. Period bucketing is undefined without it, so the whole dataset
// fails rather than dropping the row.
type ParseError struct {
	Column string
	Value  string
	Row    int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: cannot parse %q as a date in column %q", e.Row, e.Value, e.Column)
}

// IsSchemaError reports whether err is (or wraps) a SchemaError.
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}

// IsParseError reports whether err is (or wraps) a ParseError.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
