// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-pass-keeper server: the PAKE handshake round trips (satisfying
// [github.com/MKhiriev/go-pass-keeper/internal/pake.AuthTransport]) plus the
// ciphertext-only vault/record CRUD surface the sync engine drives.
//
// Every non-2xx response is mapped to one of the sentinel errors in
// errors.go; callers use [errors.Is] rather than inspecting status codes
// directly. A 409 on Upsert* surfaces as [ErrConflict] and is never treated
// as transient — it means another account already owns the id.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently held, or "" if unset.
	Token() string

	// RegisterStart and RegisterFinish implement pake.AuthTransport for
	// registration.
	RegisterStart(ctx context.Context, req models.RegisterStartRequest) (models.RegisterStartResponse, error)
	RegisterFinish(ctx context.Context, req models.RegisterFinishRequest) error

	// LoginStart and LoginFinish implement pake.AuthTransport for login.
	LoginStart(ctx context.Context, req models.LoginStartRequest) (models.LoginStartResponse, error)
	LoginFinish(ctx context.Context, req models.LoginFinishRequest) (models.LoginFinishResponse, error)

	// CreateVault POSTs a brand new vault and returns the stored row
	// (server-assigned timestamps).
	CreateVault(ctx context.Context, v models.VaultWire) (models.VaultWire, error)

	// UpsertVault PUTs v, relying on the server's idempotent-upsert
	// semantics (spec §4.6): 200 if byte-equal, 201 if newly created, 409
	// ([ErrConflict]) if another account owns the id.
	UpsertVault(ctx context.Context, v models.VaultWire) (models.VaultWire, error)

	// DeleteVault deletes the vault identified by id.
	DeleteVault(ctx context.Context, id string) error

	// ListVaultsSince returns every vault updated strictly after since,
	// for the pull phase.
	ListVaultsSince(ctx context.Context, since time.Time) ([]models.VaultWire, error)

	// CreateRecord POSTs a brand new record under vaultID.
	CreateRecord(ctx context.Context, vaultID string, r models.RecordWire) (models.RecordWire, error)

	// UpsertRecord PUTs r under vaultID with the same semantics as
	// UpsertVault.
	UpsertRecord(ctx context.Context, vaultID string, r models.RecordWire) (models.RecordWire, error)

	// DeleteRecord deletes the record identified by id within vaultID.
	DeleteRecord(ctx context.Context, vaultID, id string) error

	// ListRecordsSince returns every record in vaultID updated strictly
	// after since, for the pull phase.
	ListRecordsSince(ctx context.Context, vaultID string, since time.Time) ([]models.RecordWire, error)
}
