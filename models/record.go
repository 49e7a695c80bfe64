// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-keeper/internal/secret"
)

// PlainRecord is the in-memory, decrypted view of one opaque payload inside
// a vault (a login, a note, a card — the core does not interpret Data).
type PlainRecord struct {
	ID        uuid.UUID
	VaultID   uuid.UUID
	Data      secret.Bytes
	RecordKey secret.Bytes
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EncryptedRecord is the on-disk/on-wire form of a record.
type EncryptedRecord struct {
	ID                  uuid.UUID
	VaultID             uuid.UUID
	EncryptedRecordKey  string
	EncryptedDataBlob   string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
