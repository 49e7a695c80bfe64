// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/go-pass-keeper/internal/logger"
	"github.com/MKhiriev/go-pass-keeper/internal/store"
	"github.com/MKhiriev/go-pass-keeper/internal/utils"
	"github.com/MKhiriev/go-pass-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func vaultRowToWire(v store.VaultRow) models.VaultWire {
	return models.VaultWire{
		ID:                v.ID.String(),
		EncryptedName:     v.EncryptedName,
		EncryptedVaultKey: v.EncryptedVaultKey,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

// createVault handles POST /api/v1/vaults: the client supplies the vault ID
// in the request body, and the handler funnels into the same idempotent
// upsert the PUT route uses.
func (h *Handler) createVault(w http.ResponseWriter, r *http.Request) {
	var wire models.VaultWire
	if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
		respondError(w, logger.FromRequest(r), errBadJSON)
		return
	}
	h.upsertVaultWire(w, r, wire)
}

// upsertVault handles PUT /api/v1/vaults/{id}: the vault ID comes from the
// path, and the body supplies the ciphertext fields.
func (h *Handler) upsertVault(w http.ResponseWriter, r *http.Request) {
	var wire models.VaultWire
	if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
		respondError(w, logger.FromRequest(r), errBadJSON)
		return
	}
	wire.ID = chi.URLParam(r, "id")
	h.upsertVaultWire(w, r, wire)
}

func (h *Handler) upsertVaultWire(w http.ResponseWriter, r *http.Request, wire models.VaultWire) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		respondError(w, log, utils.ErrInvalidToken)
		return
	}

	id, err := uuid.Parse(wire.ID)
	if err != nil {
		respondError(w, log, errInvalidPathID)
		return
	}

	row := store.VaultRow{
		ID:                id,
		EncryptedName:     wire.EncryptedName,
		EncryptedVaultKey: wire.EncryptedVaultKey,
	}

	saved, outcome, err := h.vaults.Upsert(ctx, accountID, row)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upsertVaultWire").Msg("error upserting vault")
		respondError(w, log, err)
		return
	}

	status := http.StatusOK
	if outcome == store.UpsertCreated {
		status = http.StatusCreated
	}
	utils.WriteJSON(w, vaultRowToWire(saved), status)
}

// deleteVault handles DELETE /api/v1/vaults/{id}.
func (h *Handler) deleteVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		respondError(w, log, utils.ErrInvalidToken)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, log, errInvalidPathID)
		return
	}

	if err := h.vaults.Delete(ctx, accountID, id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteVault").Msg("error deleting vault")
		respondError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listVaultsSince handles GET /api/v1/vaults?since=<RFC3339Nano>, the
// incremental-sync pull for the account's vault list.
func (h *Handler) listVaultsSince(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		respondError(w, log, utils.ErrInvalidToken)
		return
	}

	since, err := parseSinceParam(r)
	if err != nil {
		respondError(w, log, err)
		return
	}

	rows, err := h.vaults.ListSince(ctx, accountID, since)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listVaultsSince").Msg("error listing vaults")
		respondError(w, log, err)
		return
	}

	wires := make([]models.VaultWire, 0, len(rows))
	for _, row := range rows {
		wires = append(wires, vaultRowToWire(row))
	}
	utils.WriteJSON(w, wires, http.StatusOK)
}

// parseSinceParam parses the "since" query parameter shared by every
// incremental-sync list endpoint. An absent parameter means "since the
// beginning of time".
func parseSinceParam(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("since")
	if raw == "" {
		return time.Time{}, nil
	}
	since, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, errInvalidSinceParam
	}
	return since, nil
}
