/*
 * Copyright (c) 2026 Firefly Software Solutions Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
Package errors provides structured error handling for FlySQL.

The errors package implements a structured error system with:
  - Error categories (Usage, Syntax, Config, Validation)
  - Error codes for programmatic handling
  - User-friendly error messages
  - Contextual information for debugging
  - Error wrapping for root cause analysis

Error Categories:
  - UsageError: Bad command-line arguments on a magic line
  - SyntaxError: Magic-line and query text parsing errors
  - ConfigError: Connections file problems
  - ValidationError: Input validation failures
*/
package errors

import (
	"fmt"
)

// ErrorCode represents a unique error identifier.
type ErrorCode int

const (
	// Usage errors (1000-1999)
	ErrCodeUsage             ErrorCode = 1000
	ErrCodeDuplicateArgument ErrorCode = 1001
	ErrCodeDuplicateAlias    ErrorCode = 1002
	ErrCodeUnknownFlag       ErrorCode = 1003

	// Syntax errors (2000-2999)
	ErrCodeSyntax         ErrorCode = 2000
	ErrCodeUnclosedString ErrorCode = 2001
	ErrCodeMalformedLine  ErrorCode = 2002

	// Config errors (3000-3999)
	ErrCodeConfig           ErrorCode = 3000
	ErrCodeConfigNotFound   ErrorCode = 3001
	ErrCodeConfigUnreadable ErrorCode = 3002
	ErrCodeSectionNotFound  ErrorCode = 3003

	// Validation errors (4000-4999)
	ErrCodeValidation      ErrorCode = 4000
	ErrCodeInvalidValue    ErrorCode = 4001
	ErrCodeMissingRequired ErrorCode = 4002
)

// Category represents the error category.
type Category string

const (
	CategoryUsage      Category = "USAGE"
	CategorySyntax     Category = "SYNTAX"
	CategoryConfig     Category = "CONFIG"
	CategoryValidation Category = "VALIDATION"
)

// FlySQLError represents a structured error in FlySQL.
type FlySQLError struct {
	Code     ErrorCode
	Category Category
	Message  string
	Detail   string
	Hint     string
	Cause    error
}

// Error implements the error interface.
func (e *FlySQLError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("ERROR %d (%s): %s - %s", e.Code, e.Category, e.Message, e.Detail)
	}
	return fmt.Sprintf("ERROR %d (%s): %s", e.Code, e.Category, e.Message)
}

// Unwrap returns the underlying cause.
func (e *FlySQLError) Unwrap() error {
	return e.Cause
}

// UserMessage returns a user-friendly error message.
func (e *FlySQLError) UserMessage() string {
	msg := fmt.Sprintf("ERROR: %s", e.Message)
	if e.Detail != "" {
		msg += fmt.Sprintf(" (%s)", e.Detail)
	}
	if e.Hint != "" {
		msg += fmt.Sprintf("\nHINT: %s", e.Hint)
	}
	return msg
}

// WithDetail adds detail to the error.
func (e *FlySQLError) WithDetail(detail string) *FlySQLError {
	e.Detail = detail
	return e
}

// WithHint adds a hint to the error.
func (e *FlySQLError) WithHint(hint string) *FlySQLError {
	e.Hint = hint
	return e
}

// WithCause adds a cause to the error.
func (e *FlySQLError) WithCause(cause error) *FlySQLError {
	e.Cause = cause
	return e
}

// ============================================================================
// Usage Error Constructors
// ============================================================================

// Usage creates a new usage error. The message is shown to the user as-is.
func Usage(message string) *FlySQLError {
	return &FlySQLError{
		Code:     ErrCodeUsage,
		Category: CategoryUsage,
		Message:  message,
	}
}

// DuplicateArgument creates an error for an argument repeated on one line.
func DuplicateArgument(message string) *FlySQLError {
	return &FlySQLError{
		Code:     ErrCodeDuplicateArgument,
		Category: CategoryUsage,
		Message:  message,
	}
}

// UnknownFlag creates an error for an unrecognized option.
func UnknownFlag(flag string) *FlySQLError {
	return &FlySQLError{
		Code:     ErrCodeUnknownFlag,
		Category: CategoryUsage,
		Message:  fmt.Sprintf("unknown option: %s", flag),
		Hint:     "Run with --help to see supported options",
	}
}

// ============================================================================
// Syntax Error Constructors
// ============================================================================

// NewSyntaxError creates a new syntax error.
func NewSyntaxError(message string) *FlySQLError {
	return &FlySQLError{
		Code:     ErrCodeSyntax,
		Category: CategorySyntax,
		Message:  message,
	}
}

// UnclosedString creates an error for a quote left open on a line.
func UnclosedString(line string) *FlySQLError {
	return &FlySQLError{
		Code:     ErrCodeUnclosedString,
		Category: CategorySyntax,
		Message:  "unclosed string literal",
		Detail:   line,
	}
}

// ============================================================================
// Config Error Constructors
// ============================================================================

// NewConfigError creates a new config error.
func NewConfigError(message string) *FlySQLError {
	return &FlySQLError{
		Code:     ErrCodeConfig,
		Category: CategoryConfig,
		Message:  message,
	}
}

// ConfigUnreadable creates an error for a connections file that exists but
// cannot be read or parsed.
func ConfigUnreadable(path string, cause error) *FlySQLError {
	return &FlySQLError{
		Code:     ErrCodeConfigUnreadable,
		Category: CategoryConfig,
		Message:  "cannot read connections file",
		Detail:   path,
		Cause:    cause,
	}
}

// SectionNotFound creates an error for a [section] reference with no match.
func SectionNotFound(section, path string) *FlySQLError {
	return &FlySQLError{
		Code:     ErrCodeSectionNotFound,
		Category: CategoryConfig,
		Message:  fmt.Sprintf("section '%s' not found", section),
		Detail:   path,
		Hint:     "Check the section name against your connections file",
	}
}

// ============================================================================
// Validation Error Constructors
// ============================================================================

// NewValidationError creates a new validation error.
func NewValidationError(message string) *FlySQLError {
	return &FlySQLError{
		Code:     ErrCodeValidation,
		Category: CategoryValidation,
		Message:  message,
	}
}

// InvalidValue creates an error for invalid values.
func InvalidValue(field, reason string) *FlySQLError {
	return &FlySQLError{
		Code:     ErrCodeInvalidValue,
		Category: CategoryValidation,
		Message:  fmt.Sprintf("invalid value for '%s'", field),
		Detail:   reason,
	}
}

// MissingRequired creates an error for missing required fields.
func MissingRequired(field string) *FlySQLError {
	return &FlySQLError{
		Code:     ErrCodeMissingRequired,
		Category: CategoryValidation,
		Message:  fmt.Sprintf("missing required field: %s", field),
	}
}

// ============================================================================
// Helper Functions
// ============================================================================

// IsUsageError checks if an error is a usage error.
func IsUsageError(err error) bool {
	if e, ok := err.(*FlySQLError); ok {
		return e.Category == CategoryUsage
	}
	return false
}

// IsSyntaxError checks if an error is a syntax error.
func IsSyntaxError(err error) bool {
	if e, ok := err.(*FlySQLError); ok {
		return e.Category == CategorySyntax
	}
	return false
}

// IsConfigError checks if an error is a config error.
func IsConfigError(err error) bool {
	if e, ok := err.(*FlySQLError); ok {
		return e.Category == CategoryConfig
	}
	return false
}

// GetCode returns the error code if it's a FlySQLError, or 0 otherwise.
func GetCode(err error) ErrorCode {
	if e, ok := err.(*FlySQLError); ok {
		return e.Code
	}
	return 0
}

// FormatError formats an error for user display.
func FormatError(err error) string {
	if e, ok := err.(*FlySQLError); ok {
		return e.UserMessage()
	}
	return fmt.Sprintf("ERROR: %v", err)
}
