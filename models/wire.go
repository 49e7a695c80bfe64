// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Wire DTOs for the §6 HTTP contract. Apart from SessionConfig, these are
// the only models package types with `json` tags — everything else is an
// in-process/on-disk shape.
package models

import "time"

// RegisterStartRequest is POST /api/v1/auth/register/start.
type RegisterStartRequest struct {
	Email       string `json:"email"`
	ClientStart []byte `json:"client_start"`
}

// RegisterStartResponse is the server's half of the first registration
// round trip.
type RegisterStartResponse struct {
	ServerStart []byte `json:"server_start"`
}

// RegisterFinishRequest is POST /api/v1/auth/register/finish.
type RegisterFinishRequest struct {
	Email        string `json:"email"`
	Salt         []byte `json:"salt"`
	ClientFinish []byte `json:"client_finish"`
}

// LoginStartRequest is POST /api/v1/auth/login/start.
type LoginStartRequest struct {
	Email       string `json:"email"`
	ClientStart []byte `json:"client_start"`
}

// LoginStartResponse carries the server's login challenge message.
type LoginStartResponse struct {
	Message []byte `json:"message"`
}

// LoginFinishRequest is POST /api/v1/auth/login/finish.
type LoginFinishRequest struct {
	Email        string `json:"email"`
	ClientFinish []byte `json:"client_finish"`
}

// LoginFinishResponse carries the freshly issued session token and the
// account's KDF salt, so any device can rehydrate the master key.
type LoginFinishResponse struct {
	AccessToken string `json:"access_token"`
	Salt        []byte `json:"salt"`
}

// VaultWire is the §6 wire shape for a vault — client and server exchange
// only this, never a PlainVault.
type VaultWire struct {
	ID                string    `json:"id"`
	EncryptedName      string    `json:"encrypted_name"`
	EncryptedVaultKey  string    `json:"encrypted_vault_key"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// RecordWire is the §6 wire shape for a record.
type RecordWire struct {
	ID                 string    `json:"id"`
	VaultID            string    `json:"vault_id"`
	EncryptedRecordKey string    `json:"encrypted_record_key"`
	EncryptedDataBlob  string    `json:"encrypted_data_blob"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
