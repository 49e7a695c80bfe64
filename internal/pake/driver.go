// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pake

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-keeper/models"
)

// AuthTransport is the client-side collaborator the handshake driver calls
// out to for each round trip. Implementations own the HTTP/JSON envelope
// (base64 framing of the opaque Message values) and authentication-header
// bookkeeping; the driver only ever sees [models] wire DTOs.
type AuthTransport interface {
	RegisterStart(ctx context.Context, req models.RegisterStartRequest) (models.RegisterStartResponse, error)
	RegisterFinish(ctx context.Context, req models.RegisterFinishRequest) error
	LoginStart(ctx context.Context, req models.LoginStartRequest) (models.LoginStartResponse, error)
	LoginFinish(ctx context.Context, req models.LoginFinishRequest) (models.LoginFinishResponse, error)
}

// Register drives a full client-side registration: ClientRegisterStart,
// a RegisterStart round trip, ClientRegisterFinish, and a RegisterFinish
// round trip. salt is freshly generated by the caller (it seeds the
// account's Argon2id master-key derivation, spec §4.1) and is handed to the
// server verbatim so any device can rehydrate it later via login.
func Register(ctx context.Context, transport AuthTransport, email string, passphrase, salt []byte) error {
	state, startMsg, err := ClientRegisterStart(passphrase)
	if err != nil {
		return fmt.Errorf("pake: client register start: %w", err)
	}

	startResp, err := transport.RegisterStart(ctx, models.RegisterStartRequest{
		Email:       email,
		ClientStart: startMsg,
	})
	if err != nil {
		return fmt.Errorf("pake: register start round trip: %w", err)
	}

	finishMsg, err := ClientRegisterFinish(passphrase, state, Message(startResp.ServerStart))
	if err != nil {
		return fmt.Errorf("pake: client register finish: %w", err)
	}

	if err := transport.RegisterFinish(ctx, models.RegisterFinishRequest{
		Email:        email,
		Salt:         salt,
		ClientFinish: finishMsg,
	}); err != nil {
		return fmt.Errorf("pake: register finish round trip: %w", err)
	}

	return nil
}

// LoginResult carries everything a successful login hands back to the
// caller: the shared session key (never transmitted) plus the server's
// access token and the account's persisted KDF salt.
type LoginResult struct {
	SessionKey  SessionKey
	AccessToken string
	Salt        []byte
}

// Login drives a full client-side login: ClientLoginStart, a LoginStart
// round trip, ClientLoginFinish (which derives SessionKey locally — it
// never crosses the wire), and a LoginFinish round trip that returns the
// server's access token and salt.
func Login(ctx context.Context, transport AuthTransport, email string, passphrase []byte) (LoginResult, error) {
	state, startMsg, err := ClientLoginStart(passphrase)
	if err != nil {
		return LoginResult{}, fmt.Errorf("pake: client login start: %w", err)
	}

	startResp, err := transport.LoginStart(ctx, models.LoginStartRequest{
		Email:       email,
		ClientStart: startMsg,
	})
	if err != nil {
		return LoginResult{}, fmt.Errorf("pake: login start round trip: %w", err)
	}

	finishMsg, sessionKey, err := ClientLoginFinish(passphrase, state, Message(startResp.Message))
	if err != nil {
		return LoginResult{}, fmt.Errorf("pake: client login finish: %w", err)
	}

	finishResp, err := transport.LoginFinish(ctx, models.LoginFinishRequest{
		Email:        email,
		ClientFinish: finishMsg,
	})
	if err != nil {
		return LoginResult{}, fmt.Errorf("pake: login finish round trip: %w", err)
	}

	return LoginResult{
		SessionKey:  sessionKey,
		AccessToken: finishResp.AccessToken,
		Salt:        finishResp.Salt,
	}, nil
}
