// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-keeper/internal/store"
	"github.com/MKhiriev/go-pass-keeper/models"
)

// pull implements spec §4.6's pull phase: fetch the vaults updated since
// the stored watermark and, for each returned vault, its records updated
// since the same watermark; apply last-writer-wins against the local copy
// (deferring to a Pending local mutation), and advance the watermark to the
// newest server timestamp observed. Records of a vault that is not in the
// returned list are not fetched.
func (e *Engine) pull(ctx context.Context) error {
	since, err := e.watermark(ctx)
	if err != nil {
		return err
	}
	newest := since

	vaults, err := e.adapter.ListVaultsSince(ctx, since)
	if err != nil {
		return fmt.Errorf("list vaults: %w", err)
	}

	for _, vw := range vaults {
		if vw.UpdatedAt.After(newest) {
			newest = vw.UpdatedAt
		}

		id, err := uuid.Parse(vw.ID)
		if err != nil {
			return fmt.Errorf("parse vault id %q: %w", vw.ID, err)
		}

		apply, err := e.shouldApply(ctx, store.VaultKey(id), models.EntityVault, id, vw.UpdatedAt)
		if err != nil {
			return err
		}
		if apply {
			v := models.EncryptedVault{
				ID: id, EncryptedName: vw.EncryptedName, EncryptedVaultKey: vw.EncryptedVaultKey,
				CreatedAt: vw.CreatedAt, UpdatedAt: vw.UpdatedAt,
			}
			encoded, err := EncodeVault(v)
			if err != nil {
				return err
			}
			if err := e.store.Put(ctx, store.TreeData, store.VaultKey(id), encoded); err != nil {
				return err
			}
		}

		records, err := e.adapter.ListRecordsSince(ctx, vw.ID, since)
		if err != nil {
			return fmt.Errorf("list records for vault %s: %w", vw.ID, err)
		}
		for _, rw := range records {
			if rw.UpdatedAt.After(newest) {
				newest = rw.UpdatedAt
			}

			rid, err := uuid.Parse(rw.ID)
			if err != nil {
				return fmt.Errorf("parse record id %q: %w", rw.ID, err)
			}

			applyRec, err := e.shouldApply(ctx, store.RecordKey(id, rid), models.EntityRecord, rid, rw.UpdatedAt)
			if err != nil {
				return err
			}
			if !applyRec {
				continue
			}

			r := models.EncryptedRecord{
				ID: rid, VaultID: id, EncryptedRecordKey: rw.EncryptedRecordKey, EncryptedDataBlob: rw.EncryptedDataBlob,
				CreatedAt: rw.CreatedAt, UpdatedAt: rw.UpdatedAt,
			}
			encoded, err := EncodeRecord(r)
			if err != nil {
				return err
			}
			if err := e.store.Put(ctx, store.TreeData, store.RecordKey(id, rid), encoded); err != nil {
				return err
			}
		}
	}

	return e.setWatermark(ctx, newest)
}

// shouldApply decides whether a server-observed row should overwrite the
// local copy, per spec's last-writer-wins-by-updated_at rule: yes if
// absent locally or locally strictly older; no if locally strictly newer
// and a Pending outbox entry still targets it (local wins until drained).
// An exact updated_at tie is not deferred to the pending-mutation check —
// it is broken by comparing the two rows' ids, per spec's documented
// "ties broken by UUID comparison" rule.
func (e *Engine) shouldApply(ctx context.Context, dataKey string, kind models.EntityKind, id uuid.UUID, serverUpdatedAt time.Time) (bool, error) {
	localUpdatedAt, localID, found, err := e.localIdentity(ctx, dataKey, kind)
	if err != nil {
		return false, err
	}
	if !found {
		return true, nil
	}

	switch {
	case localUpdatedAt.Before(serverUpdatedAt):
		return true, nil
	case serverUpdatedAt.Before(localUpdatedAt):
		pending, _, err := e.findPending(ctx, kind, id)
		if err != nil {
			return false, err
		}
		return pending == nil, nil
	default:
		return id.String() >= localID.String(), nil
	}
}

// localIdentity returns the local copy's updated_at and id, or found=false
// if dataKey is absent.
func (e *Engine) localIdentity(ctx context.Context, dataKey string, kind models.EntityKind) (time.Time, uuid.UUID, bool, error) {
	raw, err := e.store.Get(ctx, store.TreeData, dataKey)
	if errors.Is(err, store.ErrNotFoundLocal) {
		return time.Time{}, uuid.UUID{}, false, nil
	}
	if err != nil {
		return time.Time{}, uuid.UUID{}, false, err
	}

	if kind == models.EntityVault {
		v, err := DecodeVault(raw)
		if err != nil {
			return time.Time{}, uuid.UUID{}, false, err
		}
		return v.UpdatedAt, v.ID, true, nil
	}

	r, err := DecodeRecord(raw)
	if err != nil {
		return time.Time{}, uuid.UUID{}, false, err
	}
	return r.UpdatedAt, r.ID, true, nil
}

func (e *Engine) watermark(ctx context.Context) (time.Time, error) {
	raw, err := e.store.Get(ctx, store.TreeData, store.WatermarkKey)
	if errors.Is(err, store.ErrNotFoundLocal) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("read watermark: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, string(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse watermark: %w", err)
	}
	return t, nil
}

func (e *Engine) setWatermark(ctx context.Context, t time.Time) error {
	if t.IsZero() {
		return nil
	}
	return e.store.Put(ctx, store.TreeData, store.WatermarkKey, []byte(t.UTC().Format(time.RFC3339Nano)))
}
