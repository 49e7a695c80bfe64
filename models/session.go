// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/MKhiriev/go-pass-keeper/internal/secret"

// SessionConfig is the small piece of session state that survives a lock.
// Register and Login return it to the caller and UnlockOffline takes it
// back; nothing in this module writes it to disk.
type SessionConfig struct {
	APIBaseURL string `json:"api_base_url"`
	Email      string `json:"email"`
	Salt       []byte `json:"salt"`
}

// SessionMaterial is the secret state an Unlocked session holds; it must
// never be persisted and must be zeroized on lock.
type SessionMaterial struct {
	MasterKey   secret.Bytes
	AccessToken secret.Bytes // zero-length when offline
}
