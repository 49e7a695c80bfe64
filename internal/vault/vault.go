// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"fmt"

	"github.com/MKhiriev/go-pass-keeper/internal/secret"
	"github.com/MKhiriev/go-pass-keeper/models"
)

// EncryptVault seals plain under masterKey. If plain.VaultKey is not a
// crypto.KeyLen-byte key, a fresh one is generated. plain is not mutated
// and the fresh key is not returned in the clear; it is recovered by
// passing the returned EncryptedVault to DecryptVault.
func EncryptVault(plain models.PlainVault, masterKey secret.Bytes) (models.EncryptedVault, error) {
	vaultKey, err := dataKeyOrFresh(plain.VaultKey)
	if err != nil {
		return models.EncryptedVault{}, fmt.Errorf("vault: generate vault key: %w", err)
	}

	encryptedVaultKey, err := wrap(masterKey.Expose(), vaultKey.Expose())
	if err != nil {
		return models.EncryptedVault{}, fmt.Errorf("vault: wrap vault key: %w", err)
	}

	encryptedName, err := wrap(vaultKey.Expose(), plain.Name.Expose())
	if err != nil {
		return models.EncryptedVault{}, fmt.Errorf("vault: wrap name: %w", err)
	}

	return models.EncryptedVault{
		ID:                plain.ID,
		EncryptedVaultKey: encryptedVaultKey,
		EncryptedName:     encryptedName,
		CreatedAt:         plain.CreatedAt,
		UpdatedAt:         plain.UpdatedAt,
	}, nil
}

// DecryptVault opens encrypted under masterKey. An outer failure (wrong
// master key) and an inner failure (tampered name) are both surfaced as
// crypto.ErrAuthenticationFailed; callers distinguish them only by which
// wrap step failed, which this function does not need to expose further.
func DecryptVault(encrypted models.EncryptedVault, masterKey secret.Bytes) (models.PlainVault, error) {
	vaultKey, err := unwrap(masterKey.Expose(), encrypted.EncryptedVaultKey)
	if err != nil {
		return models.PlainVault{}, fmt.Errorf("vault: unwrap vault key: %w", err)
	}

	name, err := unwrap(vaultKey, encrypted.EncryptedName)
	if err != nil {
		return models.PlainVault{}, fmt.Errorf("vault: unwrap name: %w", err)
	}

	return models.PlainVault{
		ID:        encrypted.ID,
		Name:      secret.New(name),
		VaultKey:  secret.New(vaultKey),
		CreatedAt: encrypted.CreatedAt,
		UpdatedAt: encrypted.UpdatedAt,
	}, nil
}

// EncryptRecord seals plain under vaultKey, generating a fresh record key
// if plain.RecordKey is empty.
func EncryptRecord(plain models.PlainRecord, vaultKey secret.Bytes) (models.EncryptedRecord, error) {
	recordKey, err := dataKeyOrFresh(plain.RecordKey)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("vault: generate record key: %w", err)
	}

	encryptedRecordKey, err := wrap(vaultKey.Expose(), recordKey.Expose())
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("vault: wrap record key: %w", err)
	}

	encryptedData, err := wrap(recordKey.Expose(), plain.Data.Expose())
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("vault: wrap data: %w", err)
	}

	return models.EncryptedRecord{
		ID:                 plain.ID,
		VaultID:            plain.VaultID,
		EncryptedRecordKey: encryptedRecordKey,
		EncryptedDataBlob:  encryptedData,
		CreatedAt:          plain.CreatedAt,
		UpdatedAt:          plain.UpdatedAt,
	}, nil
}

// DecryptRecord opens encrypted under vaultKey.
func DecryptRecord(encrypted models.EncryptedRecord, vaultKey secret.Bytes) (models.PlainRecord, error) {
	recordKey, err := unwrap(vaultKey.Expose(), encrypted.EncryptedRecordKey)
	if err != nil {
		return models.PlainRecord{}, fmt.Errorf("vault: unwrap record key: %w", err)
	}

	data, err := unwrap(recordKey, encrypted.EncryptedDataBlob)
	if err != nil {
		return models.PlainRecord{}, fmt.Errorf("vault: unwrap data: %w", err)
	}

	return models.PlainRecord{
		ID:        encrypted.ID,
		VaultID:   encrypted.VaultID,
		Data:      secret.New(data),
		RecordKey: secret.New(recordKey),
		CreatedAt: encrypted.CreatedAt,
		UpdatedAt: encrypted.UpdatedAt,
	}, nil
}
