// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-keeper/internal/app"
	"github.com/MKhiriev/go-pass-keeper/internal/logger"
	"github.com/MKhiriev/go-pass-keeper/internal/pake"
	"github.com/MKhiriev/go-pass-keeper/internal/store"
	"github.com/MKhiriev/go-pass-keeper/internal/utils"
)

type errorResponse struct {
	message string
	status  int
}

var errorStatusMap = map[error]errorResponse{
	errBadJSON:            {message: app.MsgInvalidDataProvided, status: http.StatusBadRequest},
	errMissingSinceParam:  {message: app.MsgInvalidDataProvided, status: http.StatusBadRequest},
	errInvalidSinceParam:  {message: app.MsgInvalidDataProvided, status: http.StatusBadRequest},
	errInvalidPathID:      {message: app.MsgInvalidDataProvided, status: http.StatusBadRequest},
	errHandshakeExpired: {message: app.MsgHandshakeExpiredOrUnknown, status: http.StatusBadRequest},

	ErrEmptyAuthorizationHeader:   {message: app.MsgTokenIsExpiredOrInvalid, status: http.StatusUnauthorized},
	ErrInvalidAuthorizationHeader: {message: app.MsgTokenIsExpiredOrInvalid, status: http.StatusUnauthorized},
	ErrEmptyToken:                 {message: app.MsgTokenIsExpiredOrInvalid, status: http.StatusUnauthorized},
	utils.ErrInvalidToken:         {message: app.MsgTokenIsExpiredOrInvalid, status: http.StatusUnauthorized},

	pake.ErrInvalidMessage:   {message: app.MsgInvalidPakeMessage, status: http.StatusBadRequest},
	pake.ErrTagMismatch:      {message: app.MsgAuthenticationFailed, status: http.StatusUnauthorized},
	pake.ErrServerAuthFailed: {message: app.MsgAuthenticationFailed, status: http.StatusUnauthorized},
	pake.ErrClientAuthFailed: {message: app.MsgAuthenticationFailed, status: http.StatusUnauthorized},

	store.ErrAccountExists:         {message: app.MsgAccountAlreadyExists, status: http.StatusConflict},
	store.ErrAccountNotFound:       {message: app.MsgAccountNotFound, status: http.StatusUnauthorized},
	store.ErrVaultNotFound:         {message: app.MsgVaultNotFound, status: http.StatusNotFound},
	store.ErrRecordNotFound:        {message: app.MsgRecordNotFound, status: http.StatusNotFound},
	store.ErrOwnedByAnotherAccount: {message: app.MsgOwnedByAnotherAccount, status: http.StatusConflict},

	store.ErrBuildingSQLQuery:      {message: app.MsgInternalServerError, status: http.StatusInternalServerError},
	store.ErrExecutingQuery:        {message: app.MsgInternalServerError, status: http.StatusInternalServerError},
	store.ErrBeginningTransaction:  {message: app.MsgInternalServerError, status: http.StatusInternalServerError},
	store.ErrCommittingTransaction: {message: app.MsgInternalServerError, status: http.StatusInternalServerError},
	store.ErrScanningRow:           {message: app.MsgInternalServerError, status: http.StatusInternalServerError},
	store.ErrScanningRows:          {message: app.MsgInternalServerError, status: http.StatusInternalServerError},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{message: app.MsgInternalServerError, status: http.StatusInternalServerError}
}

// respondError logs err at the appropriate level and writes its mapped
// status code and message as a JSON error body.
func respondError(w http.ResponseWriter, log *logger.Logger, err error) {
	resp := responseFromError(err)
	if resp.status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg(resp.message)
	}
	utils.WriteJSON(w, map[string]string{"error": resp.message}, resp.status)
}
