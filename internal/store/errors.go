// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a new user cannot be stored
	// because another user already has the same email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup by email or id matches no
	// user.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPostNotFound is returned when a read, update or delete targets a post
	// that does not exist (or, for writes, is not owned by the given user).
	ErrPostNotFound = errors.New("post was not found")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported
	// storage driver name.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a driver-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when decoding a single result row or
	// document fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when decoding fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
