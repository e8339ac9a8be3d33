// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import "errors"

var (
	// ErrEmptyAuthorizationMetadata is returned by the auth interceptor when a
	// protected call carries no "authorization" metadata.
	ErrEmptyAuthorizationMetadata = errors.New("empty `authorization` metadata")

	// ErrInvalidAuthorizationMetadata is returned when the metadata value is
	// not of the form "Bearer <token>".
	ErrInvalidAuthorizationMetadata = errors.New("invalid `authorization` metadata")

	ErrEmptyRequest = errors.New("empty request")

	errPanicRecovered = errors.New("panic recovered")
)
