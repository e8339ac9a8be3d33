// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/voyager/internal/app"
)

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New(app.MsgEmptyAuthorizationHeader)

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New(app.MsgInvalidAuthorizationHeader)

	ErrInvalidJSON = errors.New(app.MsgInvalidJSON)

	// ErrRequestTooLarge is returned when a body exceeds maxRequestBodySize.
	ErrRequestTooLarge = errors.New(app.MsgRequestTooLarge)

	errRouteNotFound = errors.New(app.MsgRouteNotFound)
)
