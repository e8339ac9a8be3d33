// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a signed session token together with the identity it carries.
//
// On issue SignedString and ExpiresAt are set; on parse Token and UserID are
// set from the verified claims.
type Token struct {
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS sent to clients.
	SignedString string `json:"-"`

	// UserID is the "sub" claim.
	UserID string `json:"-"`

	// ExpiresAt is the absolute expiry ("exp" claim).
	ExpiresAt time.Time `json:"-"`
}

func (t Token) String() string {
	return t.SignedString
}
