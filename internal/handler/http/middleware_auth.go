package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-pass-keeper/internal/logger"
	"github.com/MKhiriev/go-pass-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, validates it via [utils.ValidateAndParseJWTToken], and — on success
// — stores the authenticated account's ID in the request context under
// [utils.AccountIDCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token, including an
//     empty token value ([ErrInvalidAuthorizationHeader]).
//   - The token is expired, has a bad signature, or names an unknown issuer
//     ([utils.ErrInvalidToken]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondError(w, log, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			respondError(w, log, ErrInvalidAuthorizationHeader)
			return
		}

		accountID, err := utils.ValidateAndParseJWTToken(tokenString, h.tokenSignKey, h.tokenIssuer)
		if err != nil {
			log.Err(err).Msg("token validation failed")
			respondError(w, log, utils.ErrInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), utils.AccountIDCtxKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
