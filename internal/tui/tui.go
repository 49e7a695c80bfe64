// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface (TUI) for the GoPassKeeper client.
//
// The package is built on top of the Bubble Tea framework (github.com/charmbracelet/bubbletea)
// and follows the Elm architecture: each screen is represented by a model with Init, Update,
// and View methods. Navigation between screens is performed via the [NavigateTo] message
// intercepted by the root model [RootModel].
//
// The entry point is the [TUI] type, created via [New]. The application lifecycle consists
// of two stages:
//   - [TUI.LoginFlow] — login and registration screens; terminates when the user
//     successfully authenticates or explicitly quits (Ctrl+C).
//   - [TUI.MainLoop] — the vault and record management screens; terminates on quit
//     (q / Ctrl+C) or logout (l).
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-keeper/internal/logger"
	"github.com/MKhiriev/go-pass-keeper/internal/session"
	"github.com/MKhiriev/go-pass-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by [TUI.LoginFlow] when the user terminates the program
// with Ctrl+C before completing authentication.
var ErrUserQuit = errors.New("вышел из программы")

// TUI is the facade of the package. It holds the client's Locked session and
// exposes methods for running each lifecycle stage of the application.
type TUI struct {
	locked *session.LockedSession
	logger *logger.Logger
}

// New creates and returns a new [TUI] instance over a freshly constructed
// [session.LockedSession].
func New(locked *session.LockedSession, log *logger.Logger) (*TUI, error) {
	return &TUI{locked: locked, logger: log}, nil
}

// LoginFlow launches the interactive login/registration TUI in alternate-screen mode
// (full-screen terminal mode).
//
// The method blocks until the user authenticates successfully or quits the program.
// On success it returns the session unlocked by the login.
//
// Possible errors:
//   - [ErrUserQuit]   — the user pressed Ctrl+C without logging in.
//   - any other error — failure inside the Bubble Tea program runtime.
func (t *TUI) LoginFlow(ctx context.Context, buildInfo models.AppBuildInfo) (*session.UnlockedSession, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.locked),
		"register": NewRegisterModel(ctx, t.locked),
	}

	root := NewRootModel(pages, "menu", buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return nil, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.quitByUser || result.resultSession == nil {
		return nil, ErrUserQuit
	}

	return result.resultSession, nil
}

// MainLoop launches the primary vault/record-management TUI in alternate-screen
// mode over an already-unlocked session.
//
// The method blocks until the user quits (q / Ctrl+C) or requests a logout (l).
//
// Returns logout=true when the user explicitly chose to log out so that the caller
// can Lock the session and re-run [TUI.LoginFlow] for a new one.
func (t *TUI) MainLoop(ctx context.Context, unlocked *session.UnlockedSession, buildInfo models.AppBuildInfo) (logout bool, err error) {
	model := newMainLoopModel(ctx, unlocked, buildInfo)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
