// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-keeper/internal/adapter"
	"github.com/MKhiriev/go-pass-keeper/internal/store"
	"github.com/MKhiriev/go-pass-keeper/models"
)

// drain scans the outbox in total order and pushes every Pending/Failed
// entry to the server, per spec §4.6's drain-phase rules 1-5.
func (e *Engine) drain(ctx context.Context) error {
	raws, err := e.store.ScanPrefix(ctx, store.TreeOutbox, "outbox:")
	if err != nil {
		return fmt.Errorf("scan outbox: %w", err)
	}

	for _, raw := range raws {
		entry, err := decodeOutboxEntry(raw)
		if err != nil {
			return err
		}
		if entry.Status != models.StatusPending && entry.Status != models.StatusFailed {
			continue
		}

		key := store.OutboxKey(entry.Ordinal, entry.ID)
		entry.Status = models.StatusInFlight
		if err := e.putOutboxEntry(ctx, key, entry); err != nil {
			return err
		}

		sendErr := e.send(ctx, entry)
		switch {
		case sendErr == nil:
			entry.Status = models.StatusSent
			if err := e.putOutboxEntry(ctx, key, entry); err != nil {
				return err
			}

		case isTerminal(sendErr):
			entry.Status = models.StatusFailed
			if err := e.putOutboxEntry(ctx, key, entry); err != nil {
				return err
			}

		default:
			entry.Status = models.StatusPending
			entry.Attempts++
			if err := e.putOutboxEntry(ctx, key, entry); err != nil {
				return err
			}
			return nil // stop the drain; preserves ordering for the next cycle
		}
	}
	return nil
}

// isTerminal reports whether err represents a definitive rejection (4xx,
// including 409 conflict) rather than a transient failure worth retrying.
func isTerminal(err error) bool {
	return errors.Is(err, adapter.ErrBadRequest) ||
		errors.Is(err, adapter.ErrUnauthorized) ||
		errors.Is(err, adapter.ErrForbidden) ||
		errors.Is(err, adapter.ErrNotFound) ||
		errors.Is(err, adapter.ErrConflict)
}

// send issues the server call matching entry and, on success, folds the
// server's authoritative timestamps back into the local data-tree row.
func (e *Engine) send(ctx context.Context, entry models.OutboxEntry) error {
	switch entry.EntityKind {
	case models.EntityVault:
		return e.sendVault(ctx, entry)
	case models.EntityRecord:
		return e.sendRecord(ctx, entry)
	default:
		return fmt.Errorf("sync: unknown entity kind %q", entry.EntityKind)
	}
}

func (e *Engine) sendVault(ctx context.Context, entry models.OutboxEntry) error {
	if entry.Action == models.ActionDelete {
		return e.adapter.DeleteVault(ctx, entry.EntityID.String())
	}

	v, err := DecodeVault(entry.Payload)
	if err != nil {
		return err
	}

	var stored models.VaultWire
	if entry.Action == models.ActionCreate {
		stored, err = e.adapter.CreateVault(ctx, vaultToWire(v))
	} else {
		stored, err = e.adapter.UpsertVault(ctx, vaultToWire(v))
	}
	if err != nil {
		return err
	}

	v.CreatedAt, v.UpdatedAt = stored.CreatedAt, stored.UpdatedAt
	encoded, err := EncodeVault(v)
	if err != nil {
		return err
	}
	return e.store.Put(ctx, store.TreeData, store.VaultKey(v.ID), encoded)
}

func (e *Engine) sendRecord(ctx context.Context, entry models.OutboxEntry) error {
	if entry.Action == models.ActionDelete {
		return e.adapter.DeleteRecord(ctx, entry.VaultID.String(), entry.EntityID.String())
	}

	r, err := DecodeRecord(entry.Payload)
	if err != nil {
		return err
	}

	var stored models.RecordWire
	if entry.Action == models.ActionCreate {
		stored, err = e.adapter.CreateRecord(ctx, entry.VaultID.String(), recordToWire(r))
	} else {
		stored, err = e.adapter.UpsertRecord(ctx, entry.VaultID.String(), recordToWire(r))
	}
	if err != nil {
		return err
	}

	r.CreatedAt, r.UpdatedAt = stored.CreatedAt, stored.UpdatedAt
	encoded, err := EncodeRecord(r)
	if err != nil {
		return err
	}
	return e.store.Put(ctx, store.TreeData, store.RecordKey(r.VaultID, r.ID), encoded)
}
