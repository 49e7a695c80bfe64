// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sync implements the offline-first convergence engine described in
// spec §4.6: an append-only outbox drained against the server, coalesced at
// enqueue time, composed with a pull phase that reconciles the server's
// authoritative state into the local store under last-writer-wins. A drain
// that hits a 5xx or transport error leaves the entry Pending and stops; the
// next SyncOnce call retries it at once, without waiting for a backoff
// delay.
package sync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-keeper/internal/adapter"
	"github.com/MKhiriev/go-pass-keeper/internal/store"
	"github.com/MKhiriev/go-pass-keeper/models"
)

// Engine owns one account's local outbox and drives it against the server
// through adapter.ServerAdapter.
type Engine struct {
	store   store.LocalStore
	adapter adapter.ServerAdapter
	backoff BackoffPolicy

	mu      sync.Mutex // exclusive sync lock (spec §5 SyncBusy)
	ordinal int64
	ordMu   sync.Mutex
}

// NewEngine constructs an Engine over s and a.
func NewEngine(s store.LocalStore, a adapter.ServerAdapter) *Engine {
	return &Engine{store: s, adapter: a, backoff: DefaultBackoffPolicy(), ordinal: time.Now().UnixNano()}
}

func (e *Engine) nextOrdinal() int64 {
	e.ordMu.Lock()
	defer e.ordMu.Unlock()
	e.ordinal++
	return e.ordinal
}

// Enqueue records m in the outbox, applying the coalescing rules of spec
// §4.6 against any existing Pending entry for the same (entity_kind,
// entity_id) target, and performs the matching data-tree write.
func (e *Engine) Enqueue(ctx context.Context, m Mutation) error {
	existing, existingKey, err := e.findPending(ctx, m.EntityKind, m.EntityID)
	if err != nil {
		return err
	}

	dataKey := m.dataKey()
	dataValue, err := m.encodedPayload()
	if err != nil {
		return err
	}

	switch {
	case m.Action == models.ActionDelete && existing != nil && existing.Action == models.ActionCreate:
		if err := e.store.Delete(ctx, store.TreeOutbox, existingKey); err != nil {
			return err
		}
		return e.store.Delete(ctx, store.TreeData, dataKey)

	case m.Action == models.ActionDelete && existing != nil && existing.Action == models.ActionUpdate:
		entry := *existing
		entry.Action, entry.Payload, entry.Status = models.ActionDelete, nil, models.StatusPending
		if err := e.putOutboxEntry(ctx, existingKey, entry); err != nil {
			return err
		}
		return e.store.Delete(ctx, store.TreeData, dataKey)

	case m.Action == models.ActionUpdate && existing != nil &&
		(existing.Action == models.ActionCreate || existing.Action == models.ActionUpdate):
		entry := *existing
		entry.Payload, entry.Status = dataValue, models.StatusPending
		if err := e.putOutboxEntry(ctx, existingKey, entry); err != nil {
			return err
		}
		return e.store.Put(ctx, store.TreeData, dataKey, dataValue)

	default:
		entry := models.OutboxEntry{
			ID:         uuid.New(),
			Ordinal:    e.nextOrdinal(),
			Action:     m.Action,
			EntityKind: m.EntityKind,
			EntityID:   m.EntityID,
			VaultID:    m.VaultID,
			Payload:    dataValue,
			CreatedAt:  time.Now().UTC(),
			Status:     models.StatusPending,
		}
		outboxKey := store.OutboxKey(entry.Ordinal, entry.ID)
		encodedEntry, err := encodeOutboxEntry(entry)
		if err != nil {
			return err
		}

		if m.Action == models.ActionDelete {
			return e.store.DeleteWithOutbox(ctx, dataKey, outboxKey, encodedEntry)
		}
		return e.store.PutWithOutbox(ctx, dataKey, dataValue, outboxKey, encodedEntry)
	}
}

func (m Mutation) encodedPayload() ([]byte, error) {
	switch {
	case m.VaultPayload != nil:
		return EncodeVault(*m.VaultPayload)
	case m.RecordPayload != nil:
		return EncodeRecord(*m.RecordPayload)
	default:
		return nil, nil
	}
}

// findPending returns the single Pending outbox entry (and its store key)
// targeting (kind, id), or (nil, "", nil) if there is none.
func (e *Engine) findPending(ctx context.Context, kind models.EntityKind, id uuid.UUID) (*models.OutboxEntry, string, error) {
	raws, err := e.store.ScanPrefix(ctx, store.TreeOutbox, "outbox:")
	if err != nil {
		return nil, "", fmt.Errorf("sync: scan outbox: %w", err)
	}

	for _, raw := range raws {
		entry, err := decodeOutboxEntry(raw)
		if err != nil {
			return nil, "", err
		}
		if entry.Status == models.StatusPending && entry.EntityKind == kind && entry.EntityID == id {
			return &entry, store.OutboxKey(entry.Ordinal, entry.ID), nil
		}
	}
	return nil, "", nil
}

func (e *Engine) putOutboxEntry(ctx context.Context, key string, entry models.OutboxEntry) error {
	encoded, err := encodeOutboxEntry(entry)
	if err != nil {
		return err
	}
	return e.store.Put(ctx, store.TreeOutbox, key, encoded)
}

// SyncOnce runs one drain phase followed by one pull phase. It returns
// ErrSyncBusy if another cycle already holds the lock.
func (e *Engine) SyncOnce(ctx context.Context) error {
	if !e.mu.TryLock() {
		return ErrSyncBusy
	}
	defer e.mu.Unlock()

	if err := e.drain(ctx); err != nil {
		return fmt.Errorf("sync: drain: %w", err)
	}
	if err := e.pull(ctx); err != nil {
		return fmt.Errorf("sync: pull: %w", err)
	}
	return nil
}
