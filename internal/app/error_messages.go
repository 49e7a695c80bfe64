// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// GoPassKeeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is returned when the authenticated account attempts to
	// access or modify a resource that belongs to a different account.
	MsgAccessDenied = "access denied"

	// MsgVersionIsNotSpecified describes a request that omits a version
	// value. No handler references it; incremental sync is keyed by the
	// "since" query parameter.
	MsgVersionIsNotSpecified = "version is not specified"

	// MsgAccountAlreadyExists is returned when a registration attempt is
	// rejected because the requested email is already in use.
	MsgAccountAlreadyExists = "account already exists"

	// MsgAccountNotFound is returned when a login attempt references an
	// email with no matching account.
	MsgAccountNotFound = "account not found"

	// MsgVaultNotFound is returned when an operation targets a vault that
	// does not exist, or exists but is owned by a different account.
	MsgVaultNotFound = "vault not found"

	// MsgRecordNotFound is returned when an operation targets a record that
	// does not exist, or exists but belongs to a vault owned by a different
	// account.
	MsgRecordNotFound = "record not found"

	// MsgOwnedByAnotherAccount is returned when an upsert targets an ID that
	// already belongs to a different account.
	MsgOwnedByAnotherAccount = "owned by another account"

	// MsgHandshakeExpiredOrUnknown is returned when a register/login finish
	// call cannot find a matching in-progress handshake — either none was
	// started, it already completed, or it aged out of the pending store.
	MsgHandshakeExpiredOrUnknown = "handshake expired or unknown, start again"

	// MsgInvalidPakeMessage is returned when a PAKE message fails to decode
	// or has the wrong length for the step it was submitted to.
	MsgInvalidPakeMessage = "invalid handshake message"

	// MsgAuthenticationFailed is returned when a PAKE tag check fails,
	// meaning the submitted password does not match the stored envelope.
	MsgAuthenticationFailed = "authentication failed"
)
