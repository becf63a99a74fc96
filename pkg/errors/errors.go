package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrValidation         = errors.New("validation failed")
	ErrMissingRate        = errors.New("trainer has no hourly rate")
	ErrDependencyWrite    = errors.New("dependency write failed")
	ErrMembershipNotFound = errors.New("membership not found")
	ErrTrainerNotFound    = errors.New("trainer not found")
	ErrNotFound           = errors.New("record not found")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeMissingRate        = "MISSING_RATE"
	ErrCodeDependencyWrite    = "DEPENDENCY_WRITE_ERROR"
	ErrCodeMembershipNotFound = "MEMBERSHIP_NOT_FOUND"
	ErrCodeTrainerNotFound    = "TRAINER_NOT_FOUND"
	ErrCodeDatabaseError      = "DATABASE_ERROR"
	ErrCodeCacheError         = "CACHE_ERROR"
)

// Code extracts the BusinessError code from err, or "" when err is not one.
func Code(err error) string {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// Wrap common errors with business context
func WrapValidation(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeValidation,
		"invalid input",
		fmt.Errorf("%w: %w", ErrValidation, err),
	)
}

func WrapValidationMessage(message string) *BusinessError {
	return NewBusinessError(ErrCodeValidation, message, ErrValidation)
}

func WrapMissingRate(trainerID string) *BusinessError {
	return NewBusinessError(
		ErrCodeMissingRate,
		fmt.Sprintf("Trainer with ID %s has no hourly rate configured", trainerID),
		ErrMissingRate,
	)
}

// WrapDependencyWrite reports a failed outbound write. The underlying store
// error is kept in the chain so callers can still inspect it.
func WrapDependencyWrite(operation string, err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDependencyWrite,
		fmt.Sprintf("%s failed", operation),
		fmt.Errorf("%w: %w", ErrDependencyWrite, err),
	)
}

func WrapMembershipNotFound(membershipID string) *BusinessError {
	return NewBusinessError(
		ErrCodeMembershipNotFound,
		fmt.Sprintf("Membership with ID %s not found", membershipID),
		ErrMembershipNotFound,
	)
}

func WrapTrainerNotFound(trainerID string) *BusinessError {
	return NewBusinessError(
		ErrCodeTrainerNotFound,
		fmt.Sprintf("Trainer with ID %s not found", trainerID),
		ErrTrainerNotFound,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"Cache operation failed",
		err,
	)
}
