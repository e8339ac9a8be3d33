// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrHashingFailed     = errors.New("password hashing failed")
	ErrPasswordTooLong   = errors.New("password exceeds 72 bytes")
	ErrInvalidHashFormat = errors.New("stored password hash is malformed")
)
