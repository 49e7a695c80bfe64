// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// OutboxAction identifies the mutation an OutboxEntry records.
type OutboxAction string

const (
	ActionCreate OutboxAction = "create"
	ActionUpdate OutboxAction = "update"
	ActionDelete OutboxAction = "delete"
)

// EntityKind identifies which entity type an OutboxEntry targets.
type EntityKind string

const (
	EntityVault  EntityKind = "vault"
	EntityRecord EntityKind = "record"
)

// OutboxStatus tracks where an OutboxEntry is in the drain lifecycle.
type OutboxStatus string

const (
	StatusPending  OutboxStatus = "pending"
	StatusInFlight OutboxStatus = "in_flight"
	StatusSent     OutboxStatus = "sent"
	StatusFailed   OutboxStatus = "failed"
)

// OutboxEntry is a durable, append-only record of one pending mutation
// against the server. The ordinal gives the outbox its total order; the
// entry's own UUID, not the ordinal, is what the server uses to recognize a
// retried Create or Update as the same operation.
type OutboxEntry struct {
	ID         uuid.UUID
	Ordinal    int64
	Action     OutboxAction
	EntityKind EntityKind
	EntityID   uuid.UUID
	VaultID    uuid.UUID // zero for vault entities; the owning vault for records
	Payload    []byte    // gob-encoded EncryptedVault or EncryptedRecord, at enqueue time
	CreatedAt  time.Time
	Attempts   int
	Status     OutboxStatus
}

// Key is the target this entry mutates, used for coalescing (spec §4.6):
// two pending entries sharing a Key are merged by policy rather than both
// being sent.
func (e OutboxEntry) Key() (EntityKind, uuid.UUID) {
	return e.EntityKind, e.EntityID
}
