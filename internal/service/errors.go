package service

import (
	"errors"

	"github.com/brightsmile/membership-api/models"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrEncryptionFailed = errors.New("bank detail encryption failed")
	ErrDecryptionFailed = errors.New("bank detail decryption failed")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)

// ValidationError carries the per-field violations of a rejected submission.
// It unwraps to [ErrInvalidDataProvided] so callers can classify it with
// errors.Is while still reaching the field list via errors.As.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	return ErrInvalidDataProvided.Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidDataProvided
}
