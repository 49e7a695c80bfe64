// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-keeper/internal/secret"
	"github.com/MKhiriev/go-pass-keeper/models"
)

func testMasterKey() secret.Bytes {
	return secret.New([]byte("0123456789abcdef0123456789abcdef"[:32]))
}

func TestEncryptDecryptVault_RoundTrip(t *testing.T) {
	mk := testMasterKey()
	now := time.Now().UTC()
	plain := models.PlainVault{
		ID:        uuid.New(),
		Name:      secret.NewString("My Vault"),
		CreatedAt: now,
		UpdatedAt: now,
	}

	encrypted, err := EncryptVault(plain, mk)
	require.NoError(t, err)
	assert.NotEmpty(t, encrypted.EncryptedName)
	assert.NotEmpty(t, encrypted.EncryptedVaultKey)

	decrypted, err := DecryptVault(encrypted, mk)
	require.NoError(t, err)
	assert.Equal(t, "My Vault", string(decrypted.Name.Expose()))
	assert.Equal(t, plain.ID, decrypted.ID)
}

func TestDecryptVault_WrongMasterKeyFails(t *testing.T) {
	plain := models.PlainVault{ID: uuid.New(), Name: secret.NewString("Locked Vault")}
	encrypted, err := EncryptVault(plain, testMasterKey())
	require.NoError(t, err)

	wrongKey := secret.New([]byte("ffffffffffffffffffffffffffffffff"[:32]))
	_, err = DecryptVault(encrypted, wrongKey)
	assert.Error(t, err)
}

func TestDecryptVault_TamperedNameFails(t *testing.T) {
	plain := models.PlainVault{ID: uuid.New(), Name: secret.NewString("My Vault")}
	mk := testMasterKey()
	encrypted, err := EncryptVault(plain, mk)
	require.NoError(t, err)

	encrypted.EncryptedName = encrypted.EncryptedName[:len(encrypted.EncryptedName)-2] + "AA"

	_, err = DecryptVault(encrypted, mk)
	assert.Error(t, err)
}

func TestEncryptRecord_RoundTrip(t *testing.T) {
	mk := testMasterKey()
	vaultPlain := models.PlainVault{ID: uuid.New(), Name: secret.NewString("V")}
	encVault, err := EncryptVault(vaultPlain, mk)
	require.NoError(t, err)
	decVault, err := DecryptVault(encVault, mk)
	require.NoError(t, err)

	record := models.PlainRecord{
		ID:      uuid.New(),
		VaultID: decVault.ID,
		Data:    secret.NewString("secret-data"),
	}

	encRecord, err := EncryptRecord(record, decVault.VaultKey)
	require.NoError(t, err)

	decRecord, err := DecryptRecord(encRecord, decVault.VaultKey)
	require.NoError(t, err)
	assert.Equal(t, "secret-data", string(decRecord.Data.Expose()))
}

func TestEncryptVault_ReusesExistingVaultKey(t *testing.T) {
	mk := testMasterKey()
	existingKey := secret.New([]byte("abcdefghijklmnopqrstuvwxyz012345"[:32]))
	plain := models.PlainVault{ID: uuid.New(), Name: secret.NewString("V"), VaultKey: existingKey}

	encrypted, err := EncryptVault(plain, mk)
	require.NoError(t, err)

	decrypted, err := DecryptVault(encrypted, mk)
	require.NoError(t, err)
	assert.Equal(t, existingKey.Expose(), decrypted.VaultKey.Expose())
}
