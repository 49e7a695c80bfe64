// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sync

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/MKhiriev/go-pass-keeper/models"
)

func encodeOutboxEntry(e models.OutboxEntry) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(e); err != nil {
		return nil, fmt.Errorf("sync: encode outbox entry: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeOutboxEntry(b []byte) (models.OutboxEntry, error) {
	var e models.OutboxEntry
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&e); err != nil {
		return models.OutboxEntry{}, fmt.Errorf("sync: decode outbox entry: %w", err)
	}
	return e, nil
}

func EncodeVault(v models.EncryptedVault) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("sync: encode vault: %w", err)
	}
	return buf.Bytes(), nil
}

func DecodeVault(b []byte) (models.EncryptedVault, error) {
	var v models.EncryptedVault
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&v); err != nil {
		return models.EncryptedVault{}, fmt.Errorf("sync: decode vault: %w", err)
	}
	return v, nil
}

func EncodeRecord(r models.EncryptedRecord) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(r); err != nil {
		return nil, fmt.Errorf("sync: encode record: %w", err)
	}
	return buf.Bytes(), nil
}

func DecodeRecord(b []byte) (models.EncryptedRecord, error) {
	var r models.EncryptedRecord
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&r); err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("sync: decode record: %w", err)
	}
	return r, nil
}

func vaultToWire(v models.EncryptedVault) models.VaultWire {
	return models.VaultWire{
		ID:                v.ID.String(),
		EncryptedName:     v.EncryptedName,
		EncryptedVaultKey: v.EncryptedVaultKey,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func recordToWire(r models.EncryptedRecord) models.RecordWire {
	return models.RecordWire{
		ID:                 r.ID.String(),
		VaultID:            r.VaultID.String(),
		EncryptedRecordKey: r.EncryptedRecordKey,
		EncryptedDataBlob:  r.EncryptedDataBlob,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
