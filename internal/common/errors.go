package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Pipeline error taxonomy. Per-unit errors are swallowed into run-summary
// counts; only ErrInvalidInput and unrecoverable store errors reach callers.
var (
	// ErrRecordConflict marks a natural-key uniqueness violation. Classified
	// as a benign duplicate and counted skipped, never fatal.
	ErrRecordConflict = errors.New("record conflict")
	// ErrTransientStore marks a temporarily unreachable store. The run stays
	// resumable from the last saved checkpoint.
	ErrTransientStore = errors.New("store unavailable")
	// ErrUnitProcessing marks an extractor failure for one unit. The unit is
	// counted failed and the run continues.
	ErrUnitProcessing = errors.New("unit processing failed")
	// ErrInvalidInput marks a malformed request or configuration. Aborts
	// before any processing; no checkpoint is written.
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrInternal     = errors.New("internal error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsConflict reports whether err is a benign duplicate write.
func IsConflict(err error) bool {
	return errors.Is(err, ErrRecordConflict)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func FailedPreconditionError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
