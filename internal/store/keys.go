// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/google/uuid"
)

// VaultKey is the data-tree key for a vault.
func VaultKey(id uuid.UUID) string {
	return fmt.Sprintf("vault:%s", id)
}

// RecordKey is the data-tree key for a record.
func RecordKey(vaultID, recordID uuid.UUID) string {
	return fmt.Sprintf("record:%s:%s", vaultID, recordID)
}

// RecordPrefix is the data-tree prefix matching every record in vaultID.
func RecordPrefix(vaultID uuid.UUID) string {
	return fmt.Sprintf("record:%s:", vaultID)
}

// OutboxKey is the outbox-tree key for entry, ordered by its ordinal.
func OutboxKey(ordinal int64, id uuid.UUID) string {
	return fmt.Sprintf("outbox:%020d:%s", ordinal, id)
}

// WatermarkKey is the data-tree key holding the sync engine's high
// watermark (an RFC 3339 timestamp), used across pull cycles.
const WatermarkKey = "watermark"

// VaultPrefix is the data-tree prefix matching every vault.
const VaultPrefix = "vault:"
