// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package facade implements the Core object a session hands callers: the
// CRUD surface of spec §4.7. Every mutating call loads or generates the
// appropriate key, encrypts per the three-level hierarchy (internal/vault),
// and writes through internal/sync.Engine so the data-tree write and the
// outbox append land in one atomic unit. Plaintext never crosses this
// boundary except as the return value handed back to the in-process
// caller.
package facade

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-keeper/internal/crypto"
	"github.com/MKhiriev/go-pass-keeper/internal/secret"
	"github.com/MKhiriev/go-pass-keeper/internal/store"
	"github.com/MKhiriev/go-pass-keeper/internal/sync"
	"github.com/MKhiriev/go-pass-keeper/internal/vault"
	"github.com/MKhiriev/go-pass-keeper/models"
)

// ErrVaultNotFound is returned when a record operation targets a vault id
// this session has no local copy of, and CreateRecord/UpdateRecord cannot
// resolve the vault key needed to seal the record.
var ErrVaultNotFound = errors.New("facade: vault not found")

// Core is the CRUD façade of one Unlocked session. It is not safe to use
// concurrently with a Lock of the same session.
type Core struct {
	store     store.LocalStore
	engine    *sync.Engine
	masterKey secret.Bytes
}

// New constructs a Core over an open local store, a sync engine sharing
// the same store, and the session's master key.
func New(s store.LocalStore, engine *sync.Engine, masterKey secret.Bytes) *Core {
	return &Core{store: s, engine: engine, masterKey: masterKey}
}

// ListVaults decrypts and returns every vault in the local store. A vault
// that fails to decrypt (tampered or foreign ciphertext) is skipped rather
// than aborting the whole listing, per spec §4.7.
func (c *Core) ListVaults(ctx context.Context) ([]models.PlainVault, error) {
	raws, err := c.store.ScanPrefix(ctx, store.TreeData, store.VaultPrefix)
	if err != nil {
		return nil, Classify(fmt.Errorf("facade: scan vaults: %w", err))
	}

	out := make([]models.PlainVault, 0, len(raws))
	for _, raw := range raws {
		encrypted, err := sync.DecodeVault(raw)
		if err != nil {
			continue
		}
		plain, err := vault.DecryptVault(encrypted, c.masterKey)
		if err != nil {
			continue
		}
		out = append(out, plain)
	}
	return out, nil
}

// CreateVault seals a fresh vault under the master key and enqueues it.
func (c *Core) CreateVault(ctx context.Context, name string) (models.PlainVault, error) {
	vaultKey, err := crypto.NewDataKey()
	if err != nil {
		return models.PlainVault{}, NewError(KindCipher, fmt.Errorf("facade: generate vault key: %w", err))
	}

	now := time.Now().UTC()
	plain := models.PlainVault{
		ID:        uuid.New(),
		Name:      secret.NewString(name),
		VaultKey:  vaultKey,
		CreatedAt: now,
		UpdatedAt: now,
	}

	encrypted, err := vault.EncryptVault(plain, c.masterKey)
	if err != nil {
		return models.PlainVault{}, NewError(KindCipher, fmt.Errorf("facade: encrypt vault: %w", err))
	}
	if err := c.engine.Enqueue(ctx, sync.VaultCreated(encrypted)); err != nil {
		return models.PlainVault{}, Classify(fmt.Errorf("facade: enqueue vault create: %w", err))
	}
	return plain, nil
}

// UpdateVault renames the vault identified by id. If id has no local copy,
// it upsert-creates a vault under that id rather than silently ignoring
// the caller's id — unlike the FIXME'd fallback in the system this was
// ported from, which discarded it and created a new random id.
func (c *Core) UpdateVault(ctx context.Context, id uuid.UUID, name string) (models.PlainVault, error) {
	now := time.Now().UTC()

	existing, found, err := c.getVault(ctx, id)
	if err != nil {
		return models.PlainVault{}, err
	}

	var plain models.PlainVault
	if found {
		plain = models.PlainVault{
			ID:        id,
			Name:      secret.NewString(name),
			VaultKey:  existing.VaultKey,
			CreatedAt: existing.CreatedAt,
			UpdatedAt: now,
		}
	} else {
		vaultKey, err := crypto.NewDataKey()
		if err != nil {
			return models.PlainVault{}, NewError(KindCipher, fmt.Errorf("facade: generate vault key: %w", err))
		}
		plain = models.PlainVault{ID: id, Name: secret.NewString(name), VaultKey: vaultKey, CreatedAt: now, UpdatedAt: now}
	}

	encrypted, err := vault.EncryptVault(plain, c.masterKey)
	if err != nil {
		return models.PlainVault{}, NewError(KindCipher, fmt.Errorf("facade: encrypt vault: %w", err))
	}
	if err := c.engine.Enqueue(ctx, sync.VaultUpdated(encrypted)); err != nil {
		return models.PlainVault{}, Classify(fmt.Errorf("facade: enqueue vault update: %w", err))
	}
	return plain, nil
}

// DeleteVault removes the vault identified by id.
func (c *Core) DeleteVault(ctx context.Context, id uuid.UUID) error {
	if err := c.engine.Enqueue(ctx, sync.VaultDeleted(id)); err != nil {
		return Classify(fmt.Errorf("facade: enqueue vault delete: %w", err))
	}
	return nil
}

// ListRecords decrypts and returns every record belonging to vaultID. A
// record that fails to decrypt is skipped, per spec §4.7.
func (c *Core) ListRecords(ctx context.Context, vaultID uuid.UUID) ([]models.PlainRecord, error) {
	_, vaultKey, err := c.vaultKey(ctx, vaultID)
	if err != nil {
		return nil, err
	}

	raws, err := c.store.ScanPrefix(ctx, store.TreeData, store.RecordPrefix(vaultID))
	if err != nil {
		return nil, Classify(fmt.Errorf("facade: scan records: %w", err))
	}

	out := make([]models.PlainRecord, 0, len(raws))
	for _, raw := range raws {
		encrypted, err := sync.DecodeRecord(raw)
		if err != nil {
			continue
		}
		plain, err := vault.DecryptRecord(encrypted, vaultKey)
		if err != nil {
			continue
		}
		out = append(out, plain)
	}
	return out, nil
}

// CreateRecord seals a fresh record under vaultID's vault key and enqueues
// it. Returns ErrVaultNotFound if the vault is absent locally.
func (c *Core) CreateRecord(ctx context.Context, vaultID uuid.UUID, data []byte) (models.PlainRecord, error) {
	_, vaultKey, err := c.vaultKey(ctx, vaultID)
	if err != nil {
		return models.PlainRecord{}, err
	}

	recordKey, err := crypto.NewDataKey()
	if err != nil {
		return models.PlainRecord{}, NewError(KindCipher, fmt.Errorf("facade: generate record key: %w", err))
	}

	now := time.Now().UTC()
	plain := models.PlainRecord{
		ID:        uuid.New(),
		VaultID:   vaultID,
		Data:      secret.New(data),
		RecordKey: recordKey,
		CreatedAt: now,
		UpdatedAt: now,
	}

	encrypted, err := vault.EncryptRecord(plain, vaultKey)
	if err != nil {
		return models.PlainRecord{}, NewError(KindCipher, fmt.Errorf("facade: encrypt record: %w", err))
	}
	if err := c.engine.Enqueue(ctx, sync.RecordCreated(encrypted)); err != nil {
		return models.PlainRecord{}, Classify(fmt.Errorf("facade: enqueue record create: %w", err))
	}
	return plain, nil
}

// UpdateRecord replaces the payload of the record identified by (vaultID,
// id). If id has no local copy, it upsert-creates a record under that id,
// the same fix UpdateVault applies.
func (c *Core) UpdateRecord(ctx context.Context, vaultID, id uuid.UUID, data []byte) (models.PlainRecord, error) {
	_, vaultKey, err := c.vaultKey(ctx, vaultID)
	if err != nil {
		return models.PlainRecord{}, err
	}

	now := time.Now().UTC()
	existing, found, err := c.getRecord(ctx, vaultID, id, vaultKey)
	if err != nil {
		return models.PlainRecord{}, err
	}

	var plain models.PlainRecord
	if found {
		plain = models.PlainRecord{
			ID: id, VaultID: vaultID, Data: secret.New(data), RecordKey: existing.RecordKey,
			CreatedAt: existing.CreatedAt, UpdatedAt: now,
		}
	} else {
		recordKey, err := crypto.NewDataKey()
		if err != nil {
			return models.PlainRecord{}, NewError(KindCipher, fmt.Errorf("facade: generate record key: %w", err))
		}
		plain = models.PlainRecord{ID: id, VaultID: vaultID, Data: secret.New(data), RecordKey: recordKey, CreatedAt: now, UpdatedAt: now}
	}

	encrypted, err := vault.EncryptRecord(plain, vaultKey)
	if err != nil {
		return models.PlainRecord{}, NewError(KindCipher, fmt.Errorf("facade: encrypt record: %w", err))
	}
	if err := c.engine.Enqueue(ctx, sync.RecordUpdated(encrypted)); err != nil {
		return models.PlainRecord{}, Classify(fmt.Errorf("facade: enqueue record update: %w", err))
	}
	return plain, nil
}

// DeleteRecord removes the record identified by (vaultID, id).
func (c *Core) DeleteRecord(ctx context.Context, vaultID, id uuid.UUID) error {
	if err := c.engine.Enqueue(ctx, sync.RecordDeleted(vaultID, id)); err != nil {
		return Classify(fmt.Errorf("facade: enqueue record delete: %w", err))
	}
	return nil
}

// getVault returns the decrypted local copy of id, or found=false if
// absent. A decrypt failure is a real error here, unlike ListVaults: a
// caller updating a specific id needs to know its own vault didn't open.
func (c *Core) getVault(ctx context.Context, id uuid.UUID) (models.PlainVault, bool, error) {
	raw, err := c.store.Get(ctx, store.TreeData, store.VaultKey(id))
	if errors.Is(err, store.ErrNotFoundLocal) {
		return models.PlainVault{}, false, nil
	}
	if err != nil {
		return models.PlainVault{}, false, NewError(KindStore, fmt.Errorf("facade: read vault: %w", err))
	}

	encrypted, err := sync.DecodeVault(raw)
	if err != nil {
		return models.PlainVault{}, false, NewError(KindStore, fmt.Errorf("facade: decode vault: %w", err))
	}
	plain, err := vault.DecryptVault(encrypted, c.masterKey)
	if err != nil {
		return models.PlainVault{}, false, NewError(KindCipher, fmt.Errorf("facade: decrypt vault: %w", err))
	}
	return plain, true, nil
}

// vaultKey resolves vaultID's vault key, the key every record under it is
// sealed with. Returns ErrVaultNotFound if vaultID has no local copy.
func (c *Core) vaultKey(ctx context.Context, vaultID uuid.UUID) (models.PlainVault, secret.Bytes, error) {
	plain, found, err := c.getVault(ctx, vaultID)
	if err != nil {
		return models.PlainVault{}, secret.Bytes{}, err
	}
	if !found {
		return models.PlainVault{}, secret.Bytes{}, NewError(KindNotFound, fmt.Errorf("%w: %s", ErrVaultNotFound, vaultID))
	}
	return plain, plain.VaultKey, nil
}

// getRecord returns the decrypted local copy of (vaultID, id), or
// found=false if absent.
func (c *Core) getRecord(ctx context.Context, vaultID, id uuid.UUID, vaultKey secret.Bytes) (models.PlainRecord, bool, error) {
	raw, err := c.store.Get(ctx, store.TreeData, store.RecordKey(vaultID, id))
	if errors.Is(err, store.ErrNotFoundLocal) {
		return models.PlainRecord{}, false, nil
	}
	if err != nil {
		return models.PlainRecord{}, false, NewError(KindStore, fmt.Errorf("facade: read record: %w", err))
	}

	encrypted, err := sync.DecodeRecord(raw)
	if err != nil {
		return models.PlainRecord{}, false, NewError(KindStore, fmt.Errorf("facade: decode record: %w", err))
	}
	plain, err := vault.DecryptRecord(encrypted, vaultKey)
	if err != nil {
		return models.PlainRecord{}, false, NewError(KindCipher, fmt.Errorf("facade: decrypt record: %w", err))
	}
	return plain, true, nil
}
