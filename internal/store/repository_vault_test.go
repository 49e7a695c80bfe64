// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVaultRepo(t *testing.T) (*VaultRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewVaultRepository(&DB{DB: db}), mock
}

func TestVaultRepository_Upsert_CreatesWhenAbsent(t *testing.T) {
	repo, mock := newTestVaultRepo(t)
	accountID, vaultID := uuid.New(), uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM vaults").WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO vaults").WillReturnResult(sqlmock.NewResult(1, 1))

	v, outcome, err := repo.Upsert(context.Background(), accountID, VaultRow{
		ID: vaultID, EncryptedName: "n", EncryptedVaultKey: "k",
	})
	require.NoError(t, err)
	assert.Equal(t, UpsertCreated, outcome)
	assert.Equal(t, accountID, v.AccountID)
}

func TestVaultRepository_Upsert_UpdatesWhenOwnedBySameAccount(t *testing.T) {
	repo, mock := newTestVaultRepo(t)
	accountID, vaultID := uuid.New(), uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(vaultColumns).AddRow(vaultID, accountID, "old-name", "old-key", now, now)
	mock.ExpectQuery("SELECT (.+) FROM vaults").WillReturnRows(rows)
	mock.ExpectExec("UPDATE vaults").WillReturnResult(sqlmock.NewResult(0, 1))

	v, outcome, err := repo.Upsert(context.Background(), accountID, VaultRow{
		ID: vaultID, EncryptedName: "new-name", EncryptedVaultKey: "new-key",
	})
	require.NoError(t, err)
	assert.Equal(t, UpsertUpdated, outcome)
	assert.Equal(t, "new-name", v.EncryptedName)
}

func TestVaultRepository_Upsert_ConflictWhenOwnedByAnotherAccount(t *testing.T) {
	repo, mock := newTestVaultRepo(t)
	accountID, otherAccountID, vaultID := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(vaultColumns).AddRow(vaultID, otherAccountID, "name", "key", now, now)
	mock.ExpectQuery("SELECT (.+) FROM vaults").WillReturnRows(rows)

	_, outcome, err := repo.Upsert(context.Background(), accountID, VaultRow{ID: vaultID})
	assert.ErrorIs(t, err, ErrOwnedByAnotherAccount)
	assert.Equal(t, UpsertConflict, outcome)
}

func TestVaultRepository_ListSince_OrdersByUpdatedAt(t *testing.T) {
	repo, mock := newTestVaultRepo(t)
	accountID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(vaultColumns).
		AddRow(uuid.New(), accountID, "a", "ka", now, now).
		AddRow(uuid.New(), accountID, "b", "kb", now.Add(time.Second), now.Add(time.Second))
	mock.ExpectQuery("SELECT (.+) FROM vaults").WillReturnRows(rows)

	got, err := repo.ListSince(context.Background(), accountID, now.Add(-time.Minute))
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestVaultRepository_Delete_NotFoundWhenNoRowsAffected(t *testing.T) {
	repo, mock := newTestVaultRepo(t)
	accountID, vaultID := uuid.New(), uuid.New()

	mock.ExpectExec("DELETE FROM vaults").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), accountID, vaultID)
	assert.ErrorIs(t, err, ErrVaultNotFound)
}
