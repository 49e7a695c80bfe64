// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-keeper/internal/adapter"
	"github.com/MKhiriev/go-pass-keeper/models"
)

// offlineAdapter satisfies adapter.ServerAdapter for an Unlocked(offline)
// session's sync.Engine. It is never actually dialed: UnlockedSession
// rejects SyncOnce and StartBackgroundSync with ErrOfflineMode before the
// engine ever reaches a method that would call out to it — Enqueue, the
// only engine method offline CRUD exercises, never touches the adapter.
type offlineAdapter struct{}

func (offlineAdapter) SetToken(string) {}
func (offlineAdapter) Token() string   { return "" }

func (offlineAdapter) RegisterStart(context.Context, models.RegisterStartRequest) (models.RegisterStartResponse, error) {
	return models.RegisterStartResponse{}, ErrOfflineMode
}

func (offlineAdapter) RegisterFinish(context.Context, models.RegisterFinishRequest) error {
	return ErrOfflineMode
}

func (offlineAdapter) LoginStart(context.Context, models.LoginStartRequest) (models.LoginStartResponse, error) {
	return models.LoginStartResponse{}, ErrOfflineMode
}

func (offlineAdapter) LoginFinish(context.Context, models.LoginFinishRequest) (models.LoginFinishResponse, error) {
	return models.LoginFinishResponse{}, ErrOfflineMode
}

func (offlineAdapter) CreateVault(context.Context, models.VaultWire) (models.VaultWire, error) {
	return models.VaultWire{}, ErrOfflineMode
}

func (offlineAdapter) UpsertVault(context.Context, models.VaultWire) (models.VaultWire, error) {
	return models.VaultWire{}, ErrOfflineMode
}

func (offlineAdapter) DeleteVault(context.Context, string) error { return ErrOfflineMode }

func (offlineAdapter) ListVaultsSince(context.Context, time.Time) ([]models.VaultWire, error) {
	return nil, ErrOfflineMode
}

func (offlineAdapter) CreateRecord(context.Context, string, models.RecordWire) (models.RecordWire, error) {
	return models.RecordWire{}, ErrOfflineMode
}

func (offlineAdapter) UpsertRecord(context.Context, string, models.RecordWire) (models.RecordWire, error) {
	return models.RecordWire{}, ErrOfflineMode
}

func (offlineAdapter) DeleteRecord(context.Context, string, string) error { return ErrOfflineMode }

func (offlineAdapter) ListRecordsSince(context.Context, string, time.Time) ([]models.RecordWire, error) {
	return nil, ErrOfflineMode
}

var _ adapter.ServerAdapter = offlineAdapter{}
