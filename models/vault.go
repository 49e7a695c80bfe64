// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-keeper/internal/secret"
)

// PlainVault is the in-memory, decrypted view of a named container of
// records. It never touches disk or the wire in this form.
type PlainVault struct {
	ID        uuid.UUID
	Name      secret.Bytes
	VaultKey  secret.Bytes
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EncryptedVault is the on-disk/on-wire form of a vault: everything
// sensitive is an AEAD envelope, base64-encoded.
type EncryptedVault struct {
	ID                uuid.UUID
	EncryptedVaultKey  string
	EncryptedName      string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
