package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidEncryptionConfigs indicates missing field-encryption key
	// material. The server refuses to start rather than persist bank
	// details in plaintext.
	ErrInvalidEncryptionConfigs = errors.New("invalid encryption configuration")
)
