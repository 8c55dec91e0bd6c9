// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// applyDefaults fills in values that have safe fallbacks. Security-critical
// fields (encryption key material, DSN) have no defaults on purpose.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "0.0.0.0:8080"
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
	if cfg.RateLimit.PruneInterval == 0 {
		cfg.RateLimit.PruneInterval = 5 * time.Minute
	}
	if cfg.Email.RequestTimeout == 0 {
		cfg.Email.RequestTimeout = 10 * time.Second
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Encryption key material is mandatory: without it bank details could only
// be stored in plaintext, which the service must never do.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.EncryptionSecret == "" || cfg.App.EncryptionSalt == "" {
		return ErrInvalidEncryptionConfigs
	}

	return nil
}
