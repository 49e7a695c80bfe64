// Package handler provides initialization logic for the inbound transport
// adapters used by the go-pass-keeper server. The package exposes a unified
// Handlers struct, which bundles transport-specific handler implementations
// so they can be started uniformly by the application's main entrypoint.
package handler

import (
	"github.com/MKhiriev/go-pass-keeper/internal/config"
	"github.com/MKhiriev/go-pass-keeper/internal/handler/http"
	"github.com/MKhiriev/go-pass-keeper/internal/logger"
	"github.com/MKhiriev/go-pass-keeper/internal/store"
)

// Handlers groups all initialized inbound transport handlers. The main
// application uses this structure to start the appropriate servers based on
// configuration.
type Handlers struct {
	// HTTP contains the initialized HTTP handler if HTTP is enabled in the
	// configuration. If HTTP is disabled, this field remains nil.
	HTTP *http.Handler
}

// NewHandlers constructs the Handlers bundle from the server's repositories,
// application configuration, and server transport configuration.
//
// Returns (nil, errNoHandlersAreCreated) if cfg.HTTPAddress is empty, since
// the reference server has no other inbound transport to fall back on.
func NewHandlers(accounts *store.AccountRepository, vaults *store.VaultRepository, records *store.RecordRepository, appCfg config.App, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(accounts, vaults, records, appCfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
