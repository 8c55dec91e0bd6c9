package crypto

import "errors"

var (
	// ErrNoEncryptionSecret is returned by [NewFieldCipher] when the
	// configured encryption secret is empty. Startup must fail in this
	// case; there is no plaintext fallback.
	ErrNoEncryptionSecret = errors.New("field encryption secret is not configured")

	// ErrNoEncryptionSalt is returned by [NewFieldCipher] when the key
	// derivation salt is empty.
	ErrNoEncryptionSalt = errors.New("field encryption salt is not configured")
)
