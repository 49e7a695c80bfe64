package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-pass-keeper/internal/logger"
	"github.com/MKhiriev/go-pass-keeper/internal/pake"
	"github.com/MKhiriev/go-pass-keeper/internal/store"
	"github.com/MKhiriev/go-pass-keeper/internal/utils"
	"github.com/MKhiriev/go-pass-keeper/models"
	"github.com/google/uuid"
)

// registerStart handles POST /api/v1/auth/register/start: it allocates a
// fresh OPRF key and static keypair for email and hands the client the
// material it needs to wrap its password envelope.
func (h *Handler) registerStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.registerStart").Msg("invalid JSON was passed")
		respondError(w, log, errBadJSON)
		return
	}

	if _, err := h.accounts.GetByEmail(ctx, req.Email); !errors.Is(err, store.ErrAccountNotFound) {
		if err == nil {
			respondError(w, log, store.ErrAccountExists)
			return
		}
		log.Err(err).Str("func", "*Handler.registerStart").Msg("error looking up account")
		respondError(w, log, err)
		return
	}

	state, serverStart, err := pake.ServerRegisterStart(h.serverSetup, req.Email, pake.Message(req.ClientStart))
	if err != nil {
		log.Err(err).Str("func", "*Handler.registerStart").Msg("error starting registration")
		respondError(w, log, err)
		return
	}

	h.pending.putRegistration(req.Email, state)

	utils.WriteJSON(w, models.RegisterStartResponse{ServerStart: serverStart}, http.StatusOK)
}

// registerFinish handles POST /api/v1/auth/register/finish: it assembles
// the password file from the client's finish message and persists the new
// account.
func (h *Handler) registerFinish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterFinishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.registerFinish").Msg("invalid JSON was passed")
		respondError(w, log, errBadJSON)
		return
	}

	state, ok := h.pending.takeRegistration(req.Email)
	if !ok {
		log.Error().Str("func", "*Handler.registerFinish").Msg("no pending registration for email")
		respondError(w, log, errHandshakeExpired)
		return
	}

	passwordFile, err := pake.ServerRegisterFinish(state, pake.Message(req.ClientFinish))
	if err != nil {
		log.Err(err).Str("func", "*Handler.registerFinish").Msg("error finishing registration")
		respondError(w, log, err)
		return
	}

	account := store.Account{
		ID:                 uuid.New(),
		Email:              req.Email,
		Salt:               req.Salt,
		OPRFKey:            passwordFile.Ks,
		ServerPublicKey:    passwordFile.Ps,
		ServerPrivateKey:   passwordFile.PsPriv,
		ClientPublicKey:    passwordFile.Pu,
		EnvelopeTag:        passwordFile.Tag,
		EnvelopeCiphertext: passwordFile.Ciphertext,
		CreatedAt:          time.Now().UTC(),
	}

	if err := h.accounts.Create(ctx, account); err != nil {
		log.Err(err).Str("func", "*Handler.registerFinish").Msg("error persisting account")
		respondError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// loginStart handles POST /api/v1/auth/login/start: it runs the server's
// half of the OPRF-then-ECDH exchange against the account's stored password
// file.
func (h *Handler) loginStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.loginStart").Msg("invalid JSON was passed")
		respondError(w, log, errBadJSON)
		return
	}

	account, err := h.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("func", "*Handler.loginStart").Msg("error looking up account")
		respondError(w, log, err)
		return
	}

	passwordFile := pake.PasswordFile{
		Ks:         account.OPRFKey,
		Ps:         account.ServerPublicKey,
		PsPriv:     account.ServerPrivateKey,
		Pu:         account.ClientPublicKey,
		Tag:        account.EnvelopeTag,
		Ciphertext: account.EnvelopeCiphertext,
	}

	state, out, err := pake.ServerLoginStart(passwordFile, pake.Message(req.ClientStart))
	if err != nil {
		log.Err(err).Str("func", "*Handler.loginStart").Msg("error starting login")
		respondError(w, log, err)
		return
	}

	h.pending.putLogin(req.Email, state)

	utils.WriteJSON(w, models.LoginStartResponse{Message: out}, http.StatusOK)
}

// loginFinish handles POST /api/v1/auth/login/finish: it checks the
// client's confirmation value and, on success, issues a bearer token.
func (h *Handler) loginFinish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginFinishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.loginFinish").Msg("invalid JSON was passed")
		respondError(w, log, errBadJSON)
		return
	}

	state, ok := h.pending.takeLogin(req.Email)
	if !ok {
		log.Error().Str("func", "*Handler.loginFinish").Msg("no pending login for email")
		respondError(w, log, errHandshakeExpired)
		return
	}

	if err := pake.ServerLoginFinish(state, pake.Message(req.ClientFinish)); err != nil {
		log.Err(err).Str("func", "*Handler.loginFinish").Msg("client authentication failed")
		respondError(w, log, err)
		return
	}

	account, err := h.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("func", "*Handler.loginFinish").Msg("error looking up account")
		respondError(w, log, err)
		return
	}

	token, err := utils.GenerateJWTToken(h.tokenIssuer, account.ID, h.tokenDuration, h.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*Handler.loginFinish").Msg("error generating token")
		respondError(w, log, err)
		return
	}

	utils.WriteJSON(w, models.LoginFinishResponse{AccessToken: token, Salt: account.Salt}, http.StatusOK)
}
