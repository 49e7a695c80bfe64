// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors for the crypto package. Callers should use [errors.Is] to
// distinguish them, e.g. to tell a key-derivation failure (non-retryable,
// misconfiguration) from an authentication failure (tampering or wrong key).
var (
	// ErrInvalidKDFParams is returned when the requested Argon2id parameters
	// are unusable (key length other than 32, salt shorter than 16 bytes, or
	// a cost parameter of zero).
	ErrInvalidKDFParams = errors.New("crypto: invalid kdf parameters")

	// ErrInvalidKeyLength is returned when Encrypt or Decrypt is called with
	// a key that is not exactly 32 bytes.
	ErrInvalidKeyLength = errors.New("crypto: invalid key length")

	// ErrCiphertextShort is returned when Decrypt is given a blob too short
	// to contain a nonce and an authentication tag.
	ErrCiphertextShort = errors.New("crypto: ciphertext too short")

	// ErrAuthenticationFailed is returned when the AEAD authentication tag
	// does not verify — the ciphertext was tampered with, truncated, or
	// decrypted under the wrong key. No partial plaintext is ever returned
	// alongside this error.
	ErrAuthenticationFailed = errors.New("crypto: authentication failed")
)
