// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-keeper/internal/config"
	"github.com/MKhiriev/go-pass-keeper/internal/facade"
	"github.com/MKhiriev/go-pass-keeper/internal/logger"
	"github.com/MKhiriev/go-pass-keeper/internal/secret"
	"github.com/MKhiriev/go-pass-keeper/internal/store"
	"github.com/MKhiriev/go-pass-keeper/internal/sync"
)

// mode distinguishes the two Unlocked states of spec §4.5: only
// Unlocked(online) may drive the sync engine against a real server.
type mode int

const (
	modeOnline mode = iota
	modeOffline
)

// UnlockedSession is the live state a session holds between Login (or
// UnlockOffline) and Lock. Sharing it by reference across goroutines is
// safe because store.LocalStore and sync.Engine are themselves
// thread-safe; it is not safe to call Lock concurrently with any other
// method.
type UnlockedSession struct {
	mode   mode
	cfg    *config.ClientConfig
	logger *logger.Logger

	store     store.LocalStore
	engine    *sync.Engine
	facade    *facade.Core
	masterKey secret.Bytes

	accessToken secret.Bytes
	job         *sync.BackgroundJob
}

// Facade returns the session's CRUD surface (spec §4.7). Available in
// both Unlocked states.
func (u *UnlockedSession) Facade() *facade.Core {
	return u.facade
}

// SyncOnce runs one drain-then-pull cycle (spec §4.6). Returns
// ErrOfflineMode in Unlocked(offline), both classified as a [facade.CoreError]
// per spec §7.
func (u *UnlockedSession) SyncOnce(ctx context.Context) error {
	if u.mode == modeOffline {
		return facade.NewError(facade.KindOfflineMode, ErrOfflineMode)
	}
	return facade.Classify(u.engine.SyncOnce(ctx))
}

// StartBackgroundSync launches a ticker-driven background sync job at
// interval. If interval <= 0 it uses cfg.Workers.SyncInterval, and if that
// is also <= 0 the job's own 5-minute default. Returns ErrOfflineMode in
// Unlocked(offline), classified as a [facade.CoreError] per spec §7.
func (u *UnlockedSession) StartBackgroundSync(ctx context.Context, interval time.Duration) error {
	if u.mode == modeOffline {
		return facade.NewError(facade.KindOfflineMode, ErrOfflineMode)
	}
	if interval <= 0 {
		interval = u.cfg.Workers.SyncInterval
	}
	u.job.Start(ctx, interval)
	return nil
}

// StopBackgroundSync signals the background sync job, if any, and waits
// for it to exit. Safe to call when no job is running, and safe to call
// in either Unlocked state.
func (u *UnlockedSession) StopBackgroundSync() {
	if u.job != nil {
		u.job.Stop()
	}
}

// Lock overwrites the master key and access token with zeros, stops any
// background sync job, closes the local store handle, and returns a fresh
// LockedSession that can Login or UnlockOffline again. Per spec §4.5, this
// is the only way out of either Unlocked state.
func (u *UnlockedSession) Lock() *LockedSession {
	u.StopBackgroundSync()
	u.masterKey.Zero()
	u.accessToken.Zero()
	_ = u.store.Close()

	return NewLockedSession(u.cfg, u.logger)
}
