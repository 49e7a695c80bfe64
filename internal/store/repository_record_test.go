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

func newTestRecordRepo(t *testing.T) (*RecordRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRecordRepository(&DB{DB: db}), mock
}

func TestRecordRepository_Upsert_CreatesWhenAbsent(t *testing.T) {
	repo, mock := newTestRecordRepo(t)
	vaultID, recordID := uuid.New(), uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM records").WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO records").WillReturnResult(sqlmock.NewResult(1, 1))

	rec, outcome, err := repo.Upsert(context.Background(), vaultID, RecordRow{
		ID: recordID, EncryptedRecordKey: "k", EncryptedDataBlob: "d",
	})
	require.NoError(t, err)
	assert.Equal(t, UpsertCreated, outcome)
	assert.Equal(t, vaultID, rec.VaultID)
}

func TestRecordRepository_Upsert_ConflictWhenOwnedByAnotherVault(t *testing.T) {
	repo, mock := newTestRecordRepo(t)
	vaultID, otherVaultID, recordID := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(recordColumns).AddRow(recordID, otherVaultID, "k", "d", now, now)
	mock.ExpectQuery("SELECT (.+) FROM records").WillReturnRows(rows)

	_, outcome, err := repo.Upsert(context.Background(), vaultID, RecordRow{ID: recordID})
	assert.ErrorIs(t, err, ErrOwnedByAnotherAccount)
	assert.Equal(t, UpsertConflict, outcome)
}

func TestRecordRepository_Delete_NotFoundWhenNoRowsAffected(t *testing.T) {
	repo, mock := newTestRecordRepo(t)
	vaultID, recordID := uuid.New(), uuid.New()

	mock.ExpectExec("DELETE FROM records").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), vaultID, recordID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRecordRepository_ListSince_ReturnsRows(t *testing.T) {
	repo, mock := newTestRecordRepo(t)
	vaultID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(recordColumns).AddRow(uuid.New(), vaultID, "k", "d", now, now)
	mock.ExpectQuery("SELECT (.+) FROM records").WillReturnRows(rows)

	got, err := repo.ListSince(context.Background(), vaultID, now.Add(-time.Minute))
	require.NoError(t, err)
	require.Len(t, got, 1)
}
