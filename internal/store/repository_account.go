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

// Account is the server's persisted view of one registered user: identity,
// KDF salt, and the OPAQUE password file produced at registration.
type Account struct {
	ID                 uuid.UUID
	Email              string
	Salt               []byte
	OPRFKey            []byte
	ServerPublicKey    []byte
	ServerPrivateKey   []byte
	ClientPublicKey    []byte
	EnvelopeTag        []byte
	EnvelopeCiphertext []byte
	CreatedAt          time.Time
}

// AccountRepository persists accounts for the reference server.
type AccountRepository struct {
	db *DB
}

// NewAccountRepository constructs an AccountRepository over db.
func NewAccountRepository(db *DB) *AccountRepository {
	return &AccountRepository{db: db}
}

var accountColumns = []string{
	"id", "email", "salt", "oprf_key", "server_public_key",
	"server_private_key", "client_public_key", "envelope_tag",
	"envelope_ciphertext", "created_at",
}

// Create inserts a brand new account. Returns ErrAccountExists if the email
// is already registered.
func (r *AccountRepository) Create(ctx context.Context, acc Account) error {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Insert("accounts").
		Columns(accountColumns...).
		Values(acc.ID, acc.Email, acc.Salt, acc.OPRFKey, acc.ServerPublicKey,
			acc.ServerPrivateKey, acc.ClientPublicKey, acc.EnvelopeTag,
			acc.EnvelopeCiphertext, acc.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if postgresError(err) == "23505" { // unique_violation
			return ErrAccountExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// GetByEmail fetches an account by email. Returns ErrAccountNotFound if
// none matches.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (Account, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(accountColumns...).
		From("accounts").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var acc Account
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&acc.ID, &acc.Email, &acc.Salt, &acc.OPRFKey, &acc.ServerPublicKey,
		&acc.ServerPrivateKey, &acc.ClientPublicKey, &acc.EnvelopeTag,
		&acc.EnvelopeCiphertext, &acc.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Account{}, ErrAccountNotFound
	}
	if err != nil {
		return Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return acc, nil
}
