// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// VaultRow is the server's persisted row for one vault — always ciphertext,
// per spec §4.3/§6.
type VaultRow struct {
	ID                uuid.UUID
	AccountID         uuid.UUID
	EncryptedName     string
	EncryptedVaultKey string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// UpsertOutcome reports which of the three PUT semantics (spec §4.6) an
// Upsert call produced.
type UpsertOutcome int

const (
	UpsertCreated UpsertOutcome = iota
	UpsertUpdated
	UpsertConflict
)

// VaultRepository persists vaults for the reference server.
type VaultRepository struct {
	db *DB
}

// NewVaultRepository constructs a VaultRepository over db.
func NewVaultRepository(db *DB) *VaultRepository {
	return &VaultRepository{db: db}
}

var vaultColumns = []string{"id", "account_id", "encrypted_name", "encrypted_vault_key", "created_at", "updated_at"}

// Upsert implements the idempotent-PUT semantics spec §4.6 requires: create
// if absent, update in place if owned by accountID, ErrOwnedByAnotherAccount
// (UpsertConflict, HTTP 409) if the id belongs to a different account.
func (r *VaultRepository) Upsert(ctx context.Context, accountID uuid.UUID, v VaultRow) (VaultRow, UpsertOutcome, error) {
	existing, err := r.get(ctx, v.ID)
	switch {
	case errors.Is(err, ErrVaultNotFound):
		now := time.Now().UTC()
		v.AccountID, v.CreatedAt, v.UpdatedAt = accountID, now, now

		query, args, buildErr := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
			Insert("vaults").Columns(vaultColumns...).
			Values(v.ID, v.AccountID, v.EncryptedName, v.EncryptedVaultKey, v.CreatedAt, v.UpdatedAt).
			ToSql()
		if buildErr != nil {
			return VaultRow{}, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if _, execErr := r.db.ExecContext(ctx, query, args...); execErr != nil {
			return VaultRow{}, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
		}
		return v, UpsertCreated, nil

	case err != nil:
		return VaultRow{}, 0, err

	case existing.AccountID != accountID:
		return VaultRow{}, UpsertConflict, ErrOwnedByAnotherAccount
	}

	v.AccountID = accountID
	v.CreatedAt = existing.CreatedAt
	v.UpdatedAt = time.Now().UTC()

	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Update("vaults").
		Set("encrypted_name", v.EncryptedName).
		Set("encrypted_vault_key", v.EncryptedVaultKey).
		Set("updated_at", v.UpdatedAt).
		Where(sq.Eq{"id": v.ID}).
		ToSql()
	if err != nil {
		return VaultRow{}, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return VaultRow{}, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return v, UpsertUpdated, nil
}

// GetOwned returns the vault identified by id if it is owned by accountID.
// If the vault exists but belongs to a different account it returns
// ErrVaultNotFound rather than ErrOwnedByAnotherAccount, so that a caller
// scoping records under {vaultID} cannot use this check to probe for the
// existence of another account's vault.
func (r *VaultRepository) GetOwned(ctx context.Context, accountID, id uuid.UUID) (VaultRow, error) {
	v, err := r.get(ctx, id)
	if err != nil {
		return VaultRow{}, err
	}
	if v.AccountID != accountID {
		return VaultRow{}, ErrVaultNotFound
	}
	return v, nil
}

func (r *VaultRepository) get(ctx context.Context, id uuid.UUID) (VaultRow, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(vaultColumns...).From("vaults").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return VaultRow{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var v VaultRow
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&v.ID, &v.AccountID, &v.EncryptedName, &v.EncryptedVaultKey, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return VaultRow{}, ErrVaultNotFound
	}
	if err != nil {
		return VaultRow{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return v, nil
}

// ListSince returns every vault owned by accountID updated strictly after
// since, ordered by updated_at ascending (oldest first, so the caller's
// watermark always advances monotonically).
func (r *VaultRepository) ListSince(ctx context.Context, accountID uuid.UUID, since time.Time) ([]VaultRow, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(vaultColumns...).From("vaults").
		Where(sq.And{sq.Eq{"account_id": accountID}, sq.Gt{"updated_at": since}}).
		OrderBy("updated_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var out []VaultRow
	for rows.Next() {
		var v VaultRow
		if err := rows.Scan(&v.ID, &v.AccountID, &v.EncryptedName, &v.EncryptedVaultKey, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Delete removes a vault owned by accountID. Returns ErrVaultNotFound if no
// such row is owned by that account.
func (r *VaultRepository) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Delete("vaults").
		Where(sq.And{sq.Eq{"id": id}, sq.Eq{"account_id": accountID}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrVaultNotFound
	}
	return nil
}
