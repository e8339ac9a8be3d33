// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the client-visible error messages of voyager.
//
// The server builds its sentinel errors from these strings and the client
// matches response bodies against them, so the wording must stay identical
// on both sides.
package app

const (
	// MsgInvalidDataProvided prefixes every validation failure. The field
	// detail follows after ": ".
	MsgInvalidDataProvided = "invalid data provided"

	// MsgTextRequired is the detail of a create or update with empty text.
	MsgTextRequired = "text is required"

	MsgUserAlreadyExists = "user already exists"

	// MsgInvalidCredentials covers both an unknown email and a wrong password.
	MsgInvalidCredentials = "invalid credentials"

	MsgUserNotFound = "user not found"
	MsgPostNotFound = "post not found"

	// MsgUserNotAuthorized is returned when the caller does not own the post
	// it tries to change.
	MsgUserNotAuthorized = "user not authorized"

	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	MsgEmptyAuthorizationHeader   = "empty `Authorization` header"
	MsgInvalidAuthorizationHeader = "invalid `Authorization` header"
	MsgInvalidJSON                = "invalid JSON was passed"
	MsgRouteNotFound              = "route not found"
	MsgRequestTooLarge            = "request body is too large"

	// MsgServerError replaces every unexpected failure.
	MsgServerError = "Server Error"
)
