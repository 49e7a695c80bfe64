package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init constructs and returns a fully configured [chi.Mux] router that
// serves all API endpoints of the application.
//
// # Global middleware
//
// Every request passes through the following middleware chain in order:
//   - [middleware.Recoverer] — catches panics in handlers, logs the stack
//     trace, and returns HTTP 500 to the client so the server stays alive.
//   - [Handler.withTraceID] — resolves or generates a trace ID and stores
//     an enriched logger in the request context for structured tracing.
//   - withLogging — emits a structured access-log entry (URI, method,
//     status, duration, response size) after each request completes.
//   - withGZip — transparently decompresses gzip-encoded request bodies and
//     compresses response bodies for clients that advertise gzip support.
//
// # Route groups
//
// All routes are nested under the "/api/v1" prefix:
//
//	/api/v1/auth             — PAKE registration and login (public):
//	  POST /register/start    — begin registration, returns the OPRF evaluation.
//	  POST /register/finish   — complete registration, persists the account.
//	  POST /login/start       — begin login, returns the server's key-exchange message.
//	  POST /login/finish      — complete login, returns a bearer token.
//
//	/api/v1/vaults           — vault metadata (requires a bearer token):
//	  POST   /                 — create a vault (ID supplied in the body).
//	  PUT    /{id}             — idempotent create-or-update of a vault.
//	  DELETE /{id}             — delete a vault owned by the caller.
//	  GET    /?since=          — list vaults updated after a watermark.
//
//	/api/v1/vaults/{vaultID}/records — record ciphertext (requires a bearer token):
//	  POST   /                 — create a record (ID supplied in the body).
//	  PUT    /{id}             — idempotent create-or-update of a record.
//	  DELETE /{id}             — delete a record in the caller's vault.
//	  GET    /?since=          — list records updated after a watermark.
//
//	/api/v1/version          — server metadata (public):
//	  GET /                    — return the current server version string.
//
// # Method-not-allowed behaviour
//
// [CheckHTTPMethod] is registered as the MethodNotAllowed handler. It
// overrides chi's default HTTP 405 response and returns HTTP 404 instead,
// preventing callers from discovering which HTTP methods are supported on
// a given route through error-code enumeration.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, withLogging, withGZip)

	router.Route("/api/v1", func(api chi.Router) {
		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/register/start", h.registerStart)
			auth.Post("/register/finish", h.registerFinish)
			auth.Post("/login/start", h.loginStart)
			auth.Post("/login/finish", h.loginFinish)
		})

		api.Route("/vaults", func(vaults chi.Router) {
			vaults.Use(h.auth)

			vaults.Post("/", h.createVault)
			vaults.Get("/", h.listVaultsSince)
			vaults.Put("/{id}", h.upsertVault)
			vaults.Delete("/{id}", h.deleteVault)

			vaults.Route("/{vaultID}/records", func(records chi.Router) {
				records.Post("/", h.createRecord)
				records.Get("/", h.listRecordsSince)
				records.Put("/{id}", h.upsertRecord)
				records.Delete("/{id}", h.deleteRecord)
			})
		})

		api.Route("/version", func(version chi.Router) {
			version.Get("/", h.getServerVersion)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
