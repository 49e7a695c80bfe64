// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session implements the client lifecycle of spec §4.5: Locked,
// Unlocked(online), and Unlocked(offline), with the master key held only
// for the Unlocked states and zeroized on every transition back to Locked.
package session

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-keeper/internal/adapter"
	"github.com/MKhiriev/go-pass-keeper/internal/config"
	"github.com/MKhiriev/go-pass-keeper/internal/crypto"
	"github.com/MKhiriev/go-pass-keeper/internal/facade"
	"github.com/MKhiriev/go-pass-keeper/internal/logger"
	"github.com/MKhiriev/go-pass-keeper/internal/pake"
	"github.com/MKhiriev/go-pass-keeper/internal/secret"
	"github.com/MKhiriev/go-pass-keeper/internal/store"
	"github.com/MKhiriev/go-pass-keeper/internal/sync"
	"github.com/MKhiriev/go-pass-keeper/models"
)

// LockedSession holds nothing sensitive: just enough configuration to
// either authenticate against the server (Login, Register) or rehydrate a
// previously registered identity without one (UnlockOffline).
type LockedSession struct {
	cfg    *config.ClientConfig
	logger *logger.Logger
	kdf    crypto.KDFParams
}

// NewLockedSession constructs a LockedSession from client configuration,
// using the Argon2id work factor from cfg.App (spec §4.1), falling back to
// crypto.DefaultKDFParams for any unset field.
func NewLockedSession(cfg *config.ClientConfig, log *logger.Logger) *LockedSession {
	return &LockedSession{cfg: cfg, logger: log, kdf: cfg.App.KDFParams()}
}

// Register drives the PAKE registration handshake (spec §4.2) and returns
// the SessionConfig the caller must persist (email, the freshly generated
// salt, and the configured API base URL) so a later Login or UnlockOffline
// can use it. Registration never transitions out of Locked.
func (l *LockedSession) Register(ctx context.Context, email string, passphrase []byte) (models.SessionConfig, error) {
	transport, err := adapter.NewHTTPServerAdapter(l.cfg.Adapter, l.logger)
	if err != nil {
		return models.SessionConfig{}, facade.NewError(facade.KindNetwork, fmt.Errorf("session: build transport: %w", err))
	}

	salt, err := crypto.NewSalt()
	if err != nil {
		return models.SessionConfig{}, facade.NewError(facade.KindCipher, fmt.Errorf("session: generate salt: %w", err))
	}

	if err := pake.Register(ctx, transport, email, passphrase, salt); err != nil {
		return models.SessionConfig{}, facade.Classify(fmt.Errorf("session: register: %w", err))
	}

	return models.SessionConfig{
		APIBaseURL: l.cfg.Adapter.HTTPAddress,
		Email:      email,
		Salt:       salt,
	}, nil
}

// Login drives the PAKE login handshake, derives the master key from the
// server-returned salt, opens the local store, and returns a session in
// Unlocked(online). The returned SessionConfig carries the salt the caller
// should persist for a future offline unlock.
func (l *LockedSession) Login(ctx context.Context, email string, passphrase []byte) (*UnlockedSession, models.SessionConfig, error) {
	transport, err := adapter.NewHTTPServerAdapter(l.cfg.Adapter, l.logger)
	if err != nil {
		return nil, models.SessionConfig{}, facade.NewError(facade.KindNetwork, fmt.Errorf("session: build transport: %w", err))
	}

	result, err := pake.Login(ctx, transport, email, passphrase)
	if err != nil {
		return nil, models.SessionConfig{}, facade.Classify(fmt.Errorf("session: login: %w", err))
	}
	defer result.SessionKey.Zero()

	masterKey, err := crypto.DeriveKey(passphrase, result.Salt, l.kdf)
	if err != nil {
		return nil, models.SessionConfig{}, facade.NewError(facade.KindCipher, fmt.Errorf("session: derive master key: %w", err))
	}

	localStore, err := store.OpenLocalStore(l.cfg.Storage.DB.DSN)
	if err != nil {
		masterKey.Zero()
		return nil, models.SessionConfig{}, facade.NewError(facade.KindStore, fmt.Errorf("session: open local store: %w", err))
	}

	transport.SetToken(result.AccessToken)
	engine := sync.NewEngine(localStore, transport)

	unlocked := &UnlockedSession{
		mode:        modeOnline,
		cfg:         l.cfg,
		logger:      l.logger,
		store:       localStore,
		engine:      engine,
		facade:      facade.New(localStore, engine, masterKey),
		masterKey:   masterKey,
		accessToken: secret.NewString(result.AccessToken),
		job:         sync.NewBackgroundJob(engine),
	}

	sessCfg := models.SessionConfig{APIBaseURL: l.cfg.Adapter.HTTPAddress, Email: email, Salt: result.Salt}
	return unlocked, sessCfg, nil
}

// UnlockOffline derives the master key from a previously persisted salt
// and opens the local store without ever dialing the server, per spec
// §4.5's Locked → Unlocked(offline) transition.
func (l *LockedSession) UnlockOffline(sessCfg models.SessionConfig, passphrase []byte) (*UnlockedSession, error) {
	masterKey, err := crypto.DeriveKey(passphrase, sessCfg.Salt, l.kdf)
	if err != nil {
		return nil, facade.NewError(facade.KindCipher, fmt.Errorf("session: derive master key: %w", err))
	}

	localStore, err := store.OpenLocalStore(l.cfg.Storage.DB.DSN)
	if err != nil {
		masterKey.Zero()
		return nil, facade.NewError(facade.KindStore, fmt.Errorf("session: open local store: %w", err))
	}

	engine := sync.NewEngine(localStore, offlineAdapter{})

	return &UnlockedSession{
		mode:      modeOffline,
		cfg:       l.cfg,
		logger:    l.logger,
		store:     localStore,
		engine:    engine,
		facade:    facade.New(localStore, engine, masterKey),
		masterKey: masterKey,
	}, nil
}
