// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/voyager/internal/app"
)

var (
	ErrInvalidDataProvided = errors.New(app.MsgInvalidDataProvided)
	ErrTextRequired        = fmt.Errorf("%w: %s", ErrInvalidDataProvided, app.MsgTextRequired)

	ErrUserAlreadyExists  = errors.New(app.MsgUserAlreadyExists)
	ErrInvalidCredentials = errors.New(app.MsgInvalidCredentials)
	ErrUserNotFound       = errors.New(app.MsgUserNotFound)
	ErrPostNotFound       = errors.New(app.MsgPostNotFound)

	ErrUnauthorizedAccessToDifferentUserData = errors.New(app.MsgUserNotAuthorized)

	ErrTokenIsExpiredOrInvalid = errors.New(app.MsgTokenIsExpiredOrInvalid)
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	// ErrNotLoggedIn is returned by client operations that need a session
	// before Register or Login succeeded.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrServerUnavailable wraps transport failures where no response was
	// received.
	ErrServerUnavailable = errors.New("server unavailable")

	// ErrServerError is returned when the server answered with an internal
	// error.
	ErrServerError = errors.New(app.MsgServerError)
)
