// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package facade

import (
	"errors"

	"github.com/MKhiriev/go-pass-keeper/internal/adapter"
	"github.com/MKhiriev/go-pass-keeper/internal/crypto"
	"github.com/MKhiriev/go-pass-keeper/internal/pake"
	"github.com/MKhiriev/go-pass-keeper/internal/store"
	"github.com/MKhiriev/go-pass-keeper/internal/sync"
	"github.com/MKhiriev/go-pass-keeper/internal/vault"
)

// Kind enumerates the flat error taxonomy of spec §7: every error a CRUD
// caller can observe, regardless of which layer raised it.
type Kind int

const (
	KindUnknown Kind = iota
	KindCipher
	KindStore
	KindNetwork
	KindAPI
	KindConflict
	KindAuth
	KindOfflineMode
	KindNotFound
	KindSyncBusy
)

// String renders a Kind using the names spec §7 gives each one.
func (k Kind) String() string {
	switch k {
	case KindCipher:
		return "CipherError"
	case KindStore:
		return "StoreError"
	case KindNetwork:
		return "NetworkError"
	case KindAPI:
		return "ApiError"
	case KindConflict:
		return "ConflictError"
	case KindAuth:
		return "AuthError"
	case KindOfflineMode:
		return "OfflineModeError"
	case KindNotFound:
		return "NotFoundError"
	case KindSyncBusy:
		return "SyncBusy"
	default:
		return "UnknownError"
	}
}

// CoreError is the single flat error type every facade and session method
// returns, per spec §7: "CRUD callers see a single flat error type
// enumerating the above." Status and Body are populated when the
// underlying chain carries an [adapter.StatusError] (an ApiError), and are
// zero otherwise.
type CoreError struct {
	Kind   Kind
	Status int
	Body   string
	Err    error
}

func (e *CoreError) Error() string { return e.Err.Error() }
func (e *CoreError) Unwrap() error { return e.Err }

// NewError wraps err as a CoreError of the given kind. Returns nil if err
// is nil, so call sites can write `return NewError(KindX, err)`
// unconditionally.
func NewError(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	ce := &CoreError{Kind: kind, Err: err}
	var status *adapter.StatusError
	if errors.As(err, &status) {
		ce.Status = status.Status
		ce.Body = status.Body
	}
	return ce
}

// classifiedSentinels maps every sentinel this client's lower layers raise
// to the spec §7 kind it belongs to. Classify walks it with errors.Is, the
// same pattern internal/handler/http/errors_mapper.go uses server-side.
var classifiedSentinels = map[error]Kind{
	crypto.ErrInvalidKDFParams:     KindCipher,
	crypto.ErrInvalidKeyLength:     KindCipher,
	crypto.ErrCiphertextShort:      KindCipher,
	crypto.ErrAuthenticationFailed: KindCipher,
	vault.ErrInvalidBase64:         KindCipher,

	store.ErrBuildingSQLQuery:      KindStore,
	store.ErrExecutingQuery:        KindStore,
	store.ErrBeginningTransaction:  KindStore,
	store.ErrCommittingTransaction: KindStore,
	store.ErrScanningRow:           KindStore,
	store.ErrScanningRows:          KindStore,

	store.ErrNotFoundLocal:  KindNotFound,
	store.ErrVaultNotFound:  KindNotFound,
	store.ErrRecordNotFound: KindNotFound,
	ErrVaultNotFound:        KindNotFound,
	adapter.ErrNotFound:     KindNotFound,

	adapter.ErrConflict:            KindConflict,
	store.ErrOwnedByAnotherAccount: KindConflict,

	adapter.ErrNetworkUnavailable: KindNetwork,

	adapter.ErrBadRequest:          KindAPI,
	adapter.ErrUnauthorized:        KindAPI,
	adapter.ErrForbidden:           KindAPI,
	adapter.ErrBadGateway:          KindAPI,
	adapter.ErrInternalServerError: KindAPI,

	pake.ErrInvalidMessage:   KindAuth,
	pake.ErrTagMismatch:      KindAuth,
	pake.ErrServerAuthFailed: KindAuth,
	pake.ErrClientAuthFailed: KindAuth,
	store.ErrAccountExists:   KindAuth,
	store.ErrAccountNotFound: KindAuth,

	sync.ErrSyncBusy: KindSyncBusy,
}

// Classify wraps err as a CoreError, inferring its Kind from whichever
// sentinel (if any) errors.Is finds in its chain. An err that already
// carries a CoreError is returned unchanged, so wrapping at each layer
// boundary is idempotent. An err matching no known sentinel is still
// wrapped, as KindUnknown, so a caller switching on Kind always has a
// defined case to fall into — per spec §7, every error a CRUD caller sees
// belongs to this one flat type.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var existing *CoreError
	if errors.As(err, &existing) {
		return err
	}
	for target, kind := range classifiedSentinels {
		if errors.Is(err, target) {
			return NewError(kind, err)
		}
	}
	return NewError(KindUnknown, err)
}
