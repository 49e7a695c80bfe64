// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sync

import (
	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-keeper/internal/store"
	"github.com/MKhiriev/go-pass-keeper/models"
)

// Mutation is the façade's description of one local write, handed to
// Engine.Enqueue. Exactly one of VaultPayload/RecordPayload is set for
// Create/Update; neither is set for Delete.
type Mutation struct {
	Action        models.OutboxAction
	EntityKind    models.EntityKind
	EntityID      uuid.UUID
	VaultID       uuid.UUID // the entity itself for vaults, the parent for records
	VaultPayload  *models.EncryptedVault
	RecordPayload *models.EncryptedRecord
}

// dataKey returns the data-tree key this mutation's entity occupies.
func (m Mutation) dataKey() string {
	if m.EntityKind == models.EntityVault {
		return store.VaultKey(m.EntityID)
	}
	return store.RecordKey(m.VaultID, m.EntityID)
}

// VaultCreated builds a Create mutation for a freshly encrypted vault.
func VaultCreated(v models.EncryptedVault) Mutation {
	return Mutation{Action: models.ActionCreate, EntityKind: models.EntityVault, EntityID: v.ID, VaultID: v.ID, VaultPayload: &v}
}

// VaultUpdated builds an Update mutation for a re-encrypted vault.
func VaultUpdated(v models.EncryptedVault) Mutation {
	return Mutation{Action: models.ActionUpdate, EntityKind: models.EntityVault, EntityID: v.ID, VaultID: v.ID, VaultPayload: &v}
}

// VaultDeleted builds a Delete mutation for a vault.
func VaultDeleted(id uuid.UUID) Mutation {
	return Mutation{Action: models.ActionDelete, EntityKind: models.EntityVault, EntityID: id, VaultID: id}
}

// RecordCreated builds a Create mutation for a freshly encrypted record.
func RecordCreated(r models.EncryptedRecord) Mutation {
	return Mutation{Action: models.ActionCreate, EntityKind: models.EntityRecord, EntityID: r.ID, VaultID: r.VaultID, RecordPayload: &r}
}

// RecordUpdated builds an Update mutation for a re-encrypted record.
func RecordUpdated(r models.EncryptedRecord) Mutation {
	return Mutation{Action: models.ActionUpdate, EntityKind: models.EntityRecord, EntityID: r.ID, VaultID: r.VaultID, RecordPayload: &r}
}

// RecordDeleted builds a Delete mutation for a record.
func RecordDeleted(vaultID, id uuid.UUID) Mutation {
	return Mutation{Action: models.ActionDelete, EntityKind: models.EntityRecord, EntityID: id, VaultID: vaultID}
}
