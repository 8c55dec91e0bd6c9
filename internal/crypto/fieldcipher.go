// SPDX-License-Identifier: Apache-2.0

// Package crypto implements encryption-at-rest for the sensitive bank-detail
// fields of a membership application.
//
// The construction is AES-256-GCM with a random 12-byte nonce prepended to
// every ciphertext: blob = nonce ‖ ciphertext, base64 (standard encoding).
// The 256-bit key is derived once, at construction time, from the configured
// secret and salt using Argon2id.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// fieldCipher is the private implementation of [FieldCipher]. The AEAD is
// built once at construction; Encrypt/Decrypt are safe for concurrent use.
type fieldCipher struct {
	aead cipher.AEAD
}

// NewFieldCipher derives a 256-bit key from secret and salt via Argon2id
// (OWASP 2024 parameters: 1 iteration, 64 MiB, 4 threads) and wraps it in an
// AES-256-GCM AEAD.
//
// Missing key material is fatal by design: a server without an encryption
// secret must refuse to start rather than fall back to storing plaintext.
func NewFieldCipher(secret, salt string) (FieldCipher, error) {
	if secret == "" {
		return nil, ErrNoEncryptionSecret
	}
	if salt == "" {
		return nil, ErrNoEncryptionSalt
	}

	key := argon2.IDKey([]byte(secret), []byte(salt), 1, 64*1024, 4, 32)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &fieldCipher{aead: gcm}, nil
}

// Encrypt implements [FieldCipher]. The empty string encrypts to the empty
// sentinel. Returns an error only if the random nonce read fails.
func (c *fieldCipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// Prepend the nonce so Decrypt can split it out again.
	ciphertext := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [FieldCipher]. It accepts the empty sentinel, decodes
// the base64 blob, splits off the nonce, and opens the ciphertext. An
// authentication-tag mismatch almost always means the server key changed
// since the record was written.
func (c *fieldCipher) Decrypt(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}

	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	nonceSize := c.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}
	nonce, sealed := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt field: %w", err)
	}

	return string(plaintext), nil
}
