// Package errors provides the service-layer error taxonomy shared by the
// REST and gRPC boundaries.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a failure for boundary mapping.
type ErrorCode string

const (
	ErrNotFound   ErrorCode = "NOT_FOUND"
	ErrConflict   ErrorCode = "CONFLICT"
	ErrValidation ErrorCode = "VALIDATION_ERROR"
	ErrInternal   ErrorCode = "INTERNAL_ERROR"
)

// AppError carries a classification code alongside the message. Services
// return AppError for every failure they classify; anything else is treated
// as internal by the boundaries.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(format string, args ...any) *AppError {
	return &AppError{Code: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *AppError {
	return &AppError{Code: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) *AppError {
	return &AppError{Code: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func Internal(message string, err error) *AppError {
	return &AppError{Code: ErrInternal, Message: message, Err: err}
}

// CodeOf returns the classification of err, or ErrInternal when err carries
// no AppError in its chain.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrInternal
}

func IsNotFound(err error) bool   { return CodeOf(err) == ErrNotFound }
func IsConflict(err error) bool   { return CodeOf(err) == ErrConflict }
func IsValidation(err error) bool { return CodeOf(err) == ErrValidation }
