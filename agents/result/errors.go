/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package result

import (
	"errors"
	"fmt"
)

// Kind classifies why structured text was rejected.
type Kind string

const (
	// KindExtract means no structured payload could be located in the text.
	KindExtract Kind = "extract"
	// KindDecode means the payload was located but is not valid JSON of the expected shape.
	KindDecode Kind = "decode"
	// KindMissingField means a required object field was absent.
	KindMissingField Kind = "missing_field"
	// KindInvalidValue means a field held a value of an unsupported type.
	KindInvalidValue Kind = "invalid_value"
)

// maxInputInError bounds how much of the offending input is echoed in Error().
const maxInputInError = 120

// ParseError reports structured text that could not be turned into a model type.
type ParseError struct {
	Kind  Kind
	Input string
	Err   error
}

// NewParseError constructs a ParseError for the given input.
func NewParseError(kind Kind, input string, err error) *ParseError {
	return &ParseError{Kind: kind, Input: input, Err: err}
}

// Error implements error
func (e *ParseError) Error() string {
	input := e.Input
	if len(input) > maxInputInError {
		input = input[:maxInputInError-3] + "..."
	}
	if e.Err == nil {
		return fmt.Sprintf("parse error (%s) in %q", e.Kind, input)
	}
	return fmt.Sprintf("parse error (%s): %v in %q", e.Kind, e.Err, input)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr)
}
