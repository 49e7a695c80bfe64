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

// RecordRow is the server's persisted row for one record — always
// ciphertext, per spec §4.3/§6.
type RecordRow struct {
	ID                 uuid.UUID
	VaultID            uuid.UUID
	EncryptedRecordKey string
	EncryptedDataBlob  string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// RecordRepository persists records for the reference server.
type RecordRepository struct {
	db *DB
}

// NewRecordRepository constructs a RecordRepository over db.
func NewRecordRepository(db *DB) *RecordRepository {
	return &RecordRepository{db: db}
}

var recordColumns = []string{"id", "vault_id", "encrypted_record_key", "encrypted_data_blob", "created_at", "updated_at"}

// Upsert implements the same idempotent-PUT semantics as VaultRepository.Upsert,
// scoped to a single vault: create if absent, update in place if the record
// already belongs to vaultID, ErrOwnedByAnotherAccount (UpsertConflict,
// HTTP 409) if it belongs to a different vault.
func (r *RecordRepository) Upsert(ctx context.Context, vaultID uuid.UUID, rec RecordRow) (RecordRow, UpsertOutcome, error) {
	existing, err := r.get(ctx, rec.ID)
	switch {
	case errors.Is(err, ErrRecordNotFound):
		now := time.Now().UTC()
		rec.VaultID, rec.CreatedAt, rec.UpdatedAt = vaultID, now, now

		query, args, buildErr := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
			Insert("records").Columns(recordColumns...).
			Values(rec.ID, rec.VaultID, rec.EncryptedRecordKey, rec.EncryptedDataBlob, rec.CreatedAt, rec.UpdatedAt).
			ToSql()
		if buildErr != nil {
			return RecordRow{}, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if _, execErr := r.db.ExecContext(ctx, query, args...); execErr != nil {
			return RecordRow{}, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
		}
		return rec, UpsertCreated, nil

	case err != nil:
		return RecordRow{}, 0, err

	case existing.VaultID != vaultID:
		return RecordRow{}, UpsertConflict, ErrOwnedByAnotherAccount
	}

	rec.VaultID = vaultID
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Now().UTC()

	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Update("records").
		Set("encrypted_record_key", rec.EncryptedRecordKey).
		Set("encrypted_data_blob", rec.EncryptedDataBlob).
		Set("updated_at", rec.UpdatedAt).
		Where(sq.Eq{"id": rec.ID}).
		ToSql()
	if err != nil {
		return RecordRow{}, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return RecordRow{}, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return rec, UpsertUpdated, nil
}

func (r *RecordRepository) get(ctx context.Context, id uuid.UUID) (RecordRow, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(recordColumns...).From("records").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return RecordRow{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rec RecordRow
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&rec.ID, &rec.VaultID, &rec.EncryptedRecordKey, &rec.EncryptedDataBlob, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return RecordRow{}, ErrRecordNotFound
	}
	if err != nil {
		return RecordRow{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return rec, nil
}

// ListSince returns every record in vaultID updated strictly after since,
// ordered by updated_at ascending.
func (r *RecordRepository) ListSince(ctx context.Context, vaultID uuid.UUID, since time.Time) ([]RecordRow, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(recordColumns...).From("records").
		Where(sq.And{sq.Eq{"vault_id": vaultID}, sq.Gt{"updated_at": since}}).
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

	var out []RecordRow
	for rows.Next() {
		var rec RecordRow
		if err := rows.Scan(&rec.ID, &rec.VaultID, &rec.EncryptedRecordKey, &rec.EncryptedDataBlob, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Delete removes a record scoped to vaultID. Returns ErrRecordNotFound if no
// such row exists in that vault.
func (r *RecordRepository) Delete(ctx context.Context, vaultID, id uuid.UUID) error {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Delete("records").
		Where(sq.And{sq.Eq{"id": id}, sq.Eq{"vault_id": vaultID}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRecordNotFound
	}
	return nil
}
