package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates client specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to create a resource that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeFailedPrecondition indicates the operation is not allowed in the current state
	CodeFailedPrecondition Code = "failed_precondition"

	// CodeRollLimitExceeded indicates a roll was attempted after the last roll of the turn
	CodeRollLimitExceeded Code = "roll_limit_exceeded"

	// CodeCategoryAlreadyScored indicates a scorecard slot that is already filled
	CodeCategoryAlreadyScored Code = "category_already_scored"

	// CodeInvalidCategory indicates a category that is filled or not recognized
	CodeInvalidCategory Code = "invalid_category_selection"

	// CodeGameOver indicates a mutating call on a finished game
	CodeGameOver Code = "game_already_over"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Keep the code of the closest typed error
	var appErr *Error
	if errors.As(err, &appErr) {
		return &Error{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(appErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Helper functions for common error types

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// FailedPrecondition creates a failed precondition error
func FailedPrecondition(message string) *Error {
	return New(CodeFailedPrecondition, message)
}

// RollLimitExceeded creates a roll limit error for a turn that used all of its rolls
func RollLimitExceeded(limit int) *Error {
	return Newf(CodeRollLimitExceeded, "you've had %d rolls - choose a category to score this turn", limit).
		WithMeta("limit", limit)
}

// CategoryAlreadyScored creates an error for a scorecard slot that is already filled
func CategoryAlreadyScored(category string) *Error {
	return Newf(CodeCategoryAlreadyScored, "category %s has already been scored", category).
		WithMeta("category", category)
}

// InvalidCategoryf creates a formatted invalid category selection error
func InvalidCategoryf(format string, args ...any) *Error {
	return Newf(CodeInvalidCategory, format, args...)
}

// GameOver creates an error for a call made after the game finished
func GameOver(gameID string) *Error {
	return New(CodeGameOver, "game is already over").WithMeta("game_id", gameID)
}

// Error checking functions

// Is checks if any error in the chain carries the given code
func Is(err error, code Code) bool {
	for err != nil {
		var appErr *Error
		if !errors.As(err, &appErr) {
			return false
		}
		if appErr.Code == code {
			return true
		}
		err = appErr.Cause
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsAlreadyExists checks if the error is an already exists error
func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

// IsFailedPrecondition checks if the error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return Is(err, CodeFailedPrecondition)
}

// IsRollLimitExceeded checks if the error is a roll limit error
func IsRollLimitExceeded(err error) bool {
	return Is(err, CodeRollLimitExceeded)
}

// IsCategoryAlreadyScored checks if the error is an already scored error
func IsCategoryAlreadyScored(err error) bool {
	return Is(err, CodeCategoryAlreadyScored)
}

// IsInvalidCategory checks if the error is an invalid category selection error
func IsInvalidCategory(err error) bool {
	return Is(err, CodeInvalidCategory)
}

// IsGameOver checks if the error is a game over error
func IsGameOver(err error) bool {
	return Is(err, CodeGameOver)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
