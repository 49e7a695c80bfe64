// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "errors"

// ErrInvalidBase64 is returned when an encrypted_* field on a stored entity
// is not valid standard base64.
var ErrInvalidBase64 = errors.New("vault: invalid base64 encoding")
