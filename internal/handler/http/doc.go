// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http is the REST transport of the server.
//
// Every response is a JSON [models.Response] envelope. Service errors are
// turned into status codes by statusFromError; anything unrecognised is
// logged and reported as a bare "Server Error". Routes under the protected
// group run behind the bearer-token middleware, which puts the caller id into
// the request context for the handlers.
package http
