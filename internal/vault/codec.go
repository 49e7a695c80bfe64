// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-pass-keeper/internal/crypto"
	"github.com/MKhiriev/go-pass-keeper/internal/secret"
)

func wrap(key, plaintext []byte) (string, error) {
	blob, err := crypto.Encrypt(key, plaintext, nil)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(blob), nil
}

func unwrap(key []byte, encoded string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBase64, err)
	}
	return crypto.Decrypt(key, blob, nil)
}

// dataKeyOrFresh returns key if it is already populated, otherwise
// generates and returns a new one — the "generate a fresh key if absent"
// rule spec §4.3 applies identically to vault keys and record keys.
func dataKeyOrFresh(key secret.Bytes) (secret.Bytes, error) {
	if key.Len() == crypto.KeyLen {
		return key, nil
	}
	return crypto.NewDataKey()
}
