// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pass-keeper/internal/logger"
	"github.com/MKhiriev/go-pass-keeper/internal/store"
	"github.com/MKhiriev/go-pass-keeper/internal/utils"
	"github.com/MKhiriev/go-pass-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func recordRowToWire(rec store.RecordRow) models.RecordWire {
	return models.RecordWire{
		ID:                 rec.ID.String(),
		VaultID:            rec.VaultID.String(),
		EncryptedRecordKey: rec.EncryptedRecordKey,
		EncryptedDataBlob:  rec.EncryptedDataBlob,
		CreatedAt:          rec.CreatedAt,
		UpdatedAt:          rec.UpdatedAt,
	}
}

// ownedVaultID resolves the {vaultID} path parameter and confirms it names a
// vault owned by the authenticated account, returning ErrVaultNotFound
// (rather than leaking ErrOwnedByAnotherAccount) for a vault owned by
// someone else.
func (h *Handler) ownedVaultID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		respondError(w, log, utils.ErrInvalidToken)
		return uuid.Nil, false
	}

	vaultID, err := uuid.Parse(chi.URLParam(r, "vaultID"))
	if err != nil {
		respondError(w, log, errInvalidPathID)
		return uuid.Nil, false
	}

	if _, err := h.vaults.GetOwned(r.Context(), accountID, vaultID); err != nil {
		respondError(w, log, err)
		return uuid.Nil, false
	}

	return vaultID, true
}

// createRecord handles POST /api/v1/vaults/{vaultID}/records.
func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	var wire models.RecordWire
	if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
		respondError(w, logger.FromRequest(r), errBadJSON)
		return
	}
	h.upsertRecordWire(w, r, wire)
}

// upsertRecord handles PUT /api/v1/vaults/{vaultID}/records/{id}.
func (h *Handler) upsertRecord(w http.ResponseWriter, r *http.Request) {
	var wire models.RecordWire
	if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
		respondError(w, logger.FromRequest(r), errBadJSON)
		return
	}
	wire.ID = chi.URLParam(r, "id")
	h.upsertRecordWire(w, r, wire)
}

func (h *Handler) upsertRecordWire(w http.ResponseWriter, r *http.Request, wire models.RecordWire) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	vaultID, ok := h.ownedVaultID(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(wire.ID)
	if err != nil {
		respondError(w, log, errInvalidPathID)
		return
	}

	row := store.RecordRow{
		ID:                 id,
		EncryptedRecordKey: wire.EncryptedRecordKey,
		EncryptedDataBlob:  wire.EncryptedDataBlob,
	}

	saved, outcome, err := h.records.Upsert(ctx, vaultID, row)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upsertRecordWire").Msg("error upserting record")
		respondError(w, log, err)
		return
	}

	status := http.StatusOK
	if outcome == store.UpsertCreated {
		status = http.StatusCreated
	}
	utils.WriteJSON(w, recordRowToWire(saved), status)
}

// deleteRecord handles DELETE /api/v1/vaults/{vaultID}/records/{id}.
func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	vaultID, ok := h.ownedVaultID(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, log, errInvalidPathID)
		return
	}

	if err := h.records.Delete(r.Context(), vaultID, id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteRecord").Msg("error deleting record")
		respondError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listRecordsSince handles GET /api/v1/vaults/{vaultID}/records?since=<RFC3339Nano>.
func (h *Handler) listRecordsSince(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	vaultID, ok := h.ownedVaultID(w, r)
	if !ok {
		return
	}

	since, err := parseSinceParam(r)
	if err != nil {
		respondError(w, log, err)
		return
	}

	rows, err := h.records.ListSince(r.Context(), vaultID, since)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listRecordsSince").Msg("error listing records")
		respondError(w, log, err)
		return
	}

	wires := make([]models.RecordWire, 0, len(rows))
	for _, row := range rows {
		wires = append(wires, recordRowToWire(row))
	}
	utils.WriteJSON(w, wires, http.StatusOK)
}
