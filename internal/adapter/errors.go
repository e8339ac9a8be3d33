// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrRequestFailed wraps failures where no response was received.
	ErrRequestFailed = errors.New("request failed")

	// ErrNoToken is returned by authenticated calls before a token is set.
	ErrNoToken = errors.New("no bearer token set")

	ErrInvalidResponse = errors.New("invalid response body")
)

// ResponseError is a non-2xx answer of the server.
type ResponseError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Message is the "error" field of the response envelope, or the raw body
	// when the body is not an envelope.
	Message string

	kind error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.kind, e.StatusCode, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}
