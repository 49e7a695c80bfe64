// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-keeper/internal/config"
	"github.com/MKhiriev/go-pass-keeper/internal/logger"
	"github.com/MKhiriev/go-pass-keeper/internal/session"
	"github.com/MKhiriev/go-pass-keeper/internal/tui"
	"github.com/MKhiriev/go-pass-keeper/models"
)

// App is the concrete interactive client runtime.
//
// It coordinates the Locked/Unlocked session lifecycle, the initial and
// periodic background sync, and the main terminal UI loop.
type App struct {
	cfg       *config.ClientConfig
	logger    *logger.Logger
	locked    *session.LockedSession
	tui       *tui.TUI
	buildInfo models.AppBuildInfo
}

// NewApp builds the client's configuration, logger, session, and terminal UI,
// and assembles them into a runnable [App].
func NewApp(buildInfo models.AppBuildInfo) (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("client: load config: %w", err)
	}

	log := logger.NewClientLogger("client")
	locked := session.NewLockedSession(cfg, log)

	ui, err := tui.New(locked, log)
	if err != nil {
		return nil, fmt.Errorf("client: build tui: %w", err)
	}

	return &App{cfg: cfg, logger: log, locked: locked, tui: ui, buildInfo: buildInfo}, nil
}

// Run executes the full client lifecycle.
//
// Flow:
//  1. Run the login flow and obtain an Unlocked session.
//  2. Perform an initial full sync (non-fatal warning on failure).
//  3. Start the periodic background sync job.
//  4. Run the main TUI loop.
//  5. Lock the session on exit; on logout, restart the lifecycle from login.
func (a *App) Run() error {
	ctx := context.Background()

	unlocked, err := a.tui.LoginFlow(ctx, a.buildInfo)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	if err = unlocked.SyncOnce(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "sync warning: %v\n", err)
	}

	if err = unlocked.StartBackgroundSync(ctx, 0); err != nil {
		fmt.Fprintf(os.Stderr, "background sync warning: %v\n", err)
	}

	logout, runErr := a.tui.MainLoop(ctx, unlocked, a.buildInfo)
	a.locked = unlocked.Lock()

	if logout {
		return a.Run()
	}
	return runErr
}
