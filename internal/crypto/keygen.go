// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"

	"github.com/MKhiriev/go-pass-keeper/internal/secret"
)

// NewDataKey returns a fresh random 32-byte AEAD key — used by package
// vault whenever a vault or record does not yet have one.
func NewDataKey() (secret.Bytes, error) {
	key := make([]byte, KeyLen)
	if _, err := rand.Read(key); err != nil {
		return secret.Bytes{}, fmt.Errorf("crypto: generate data key: %w", err)
	}
	return secret.New(key), nil
}

// SaltLen is the length of a fresh registration salt, per spec §4.2 step 4.
const SaltLen = 16

// NewSalt returns a fresh random salt, generated client-side at
// registration and handed to the server to persist alongside the account.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("crypto: generate salt: %w", err)
	}
	return salt, nil
}
