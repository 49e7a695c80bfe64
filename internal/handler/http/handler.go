package http

import (
	"time"

	"github.com/MKhiriev/go-pass-keeper/internal/config"
	"github.com/MKhiriev/go-pass-keeper/internal/logger"
	"github.com/MKhiriev/go-pass-keeper/internal/pake"
	"github.com/MKhiriev/go-pass-keeper/internal/store"
)

// Handler is the root HTTP handler that wires together all route groups
// and middleware chains for the REST API.
//
// It holds references to the server's repositories and a structured logger
// so that every sub-handler and middleware can reach persistence and emit
// consistent, context-enriched log entries. The server never holds a
// plaintext password or a master key — only the PAKE password file and
// ciphertext vaults/records handed to it over the wire.
//
// Handler is constructed once at application startup via [NewHandler] and
// its routes are registered by the setup methods defined in routes.go.
// It is not safe to copy a Handler after construction.
type Handler struct {
	accounts *store.AccountRepository
	vaults   *store.VaultRepository
	records  *store.RecordRepository

	serverSetup pake.ServerSetup
	pending     *pendingHandshakes

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration
	version       string

	logger *logger.Logger
}

// NewHandler constructs a [Handler] wired to the given repositories and
// application configuration, and returns a pointer to the initialised
// instance.
func NewHandler(accounts *store.AccountRepository, vaults *store.VaultRepository, records *store.RecordRepository, appCfg config.App, log *logger.Logger) *Handler {
	log.Debug().Msg("http handler created")
	return &Handler{
		accounts:      accounts,
		vaults:        vaults,
		records:       records,
		serverSetup:   pake.ServerSetup{ServerID: appCfg.TokenIssuer},
		pending:       newPendingHandshakes(),
		tokenSignKey:  appCfg.TokenSignKey,
		tokenIssuer:   appCfg.TokenIssuer,
		tokenDuration: appCfg.TokenDuration,
		version:       appCfg.Version,
		logger:        log,
	}
}
