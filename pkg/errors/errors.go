package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Classified client errors - every failed backend or weather call ends up as one of these
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeNetwork
	ErrorTypeAuth
	ErrorTypeValidation
	ErrorTypeServer

	// Local errors - raised by the gateway and its stores, never by the backend
	ErrorTypeNotFound
	ErrorTypeStorage

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeNetwork:
		return "NETWORK_ERROR"
	case ErrorTypeAuth:
		return "AUTH_ERROR"
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeServer:
		return "SERVER_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeStorage:
		return "STORAGE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short names used by callers when switching over a classified error
const (
	NetworkError       = ErrorTypeNetwork
	AuthError          = ErrorTypeAuth
	ValidationError    = ErrorTypeValidation
	ServerError        = ErrorTypeServer
	NotFoundError      = ErrorTypeNotFound
	StorageError       = ErrorTypeStorage
	ConfigurationError = ErrorTypeConfiguration
)

type AppError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Cause      error
}

func (e *AppError) Error() string {
	msg := e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s [status %d]", msg, e.StatusCode)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), msg)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Classified Error Constructors
func NewNetworkError(message string, cause error) *AppError {
	return Wrap(NetworkError, message, cause)
}

func NewAuthError(message string) *AppError {
	return &AppError{Type: AuthError, Message: message, StatusCode: 401}
}

func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewServerError(message string, statusCode int, cause error) *AppError {
	return &AppError{Type: ServerError, Message: message, StatusCode: statusCode, Cause: cause}
}

// Local Error Constructors
func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

func NewStorageError(message string, cause error) *AppError {
	return Wrap(StorageError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the classified type of err, looking through wrapping.
// Errors that are not AppErrors are reported as ErrorTypeUnknown.
func TypeOf(err error) ErrorType {
	if appErr, ok := asAppError(err); ok {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// Helper functions for error type checking
func IsNetworkError(err error) bool {
	return err != nil && TypeOf(err) == NetworkError
}

func IsAuthError(err error) bool {
	return err != nil && TypeOf(err) == AuthError
}

func IsValidationError(err error) bool {
	return err != nil && TypeOf(err) == ValidationError
}

func IsServerError(err error) bool {
	return err != nil && TypeOf(err) == ServerError
}

func IsNotFoundError(err error) bool {
	return err != nil && TypeOf(err) == NotFoundError
}

func IsStorageError(err error) bool {
	return err != nil && TypeOf(err) == StorageError
}

func IsConfigurationError(err error) bool {
	return err != nil && TypeOf(err) == ConfigurationError
}

func asAppError(err error) (*AppError, bool) {
	var appErr *AppError
	ok := stderrors.As(err, &appErr)
	return appErr, ok
}
