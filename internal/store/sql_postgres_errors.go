// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the retry loop in [DB.withRetry] whether a failed
// statement is worth another attempt.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// retryablePgCodes are SQLSTATEs after which a user or post read may succeed
// on a fresh attempt: lost connections, serialization conflicts and a server
// that is still starting up.
var retryablePgCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {},
	pgerrcode.ConnectionDoesNotExist: {},
	pgerrcode.ConnectionFailure:      {},
	pgerrcode.TransactionRollback:    {},
	pgerrcode.SerializationFailure:   {},
	pgerrcode.DeadlockDetected:       {},
	pgerrcode.CannotConnectNow:       {},
}

// PostgresErrorClassifier reads SQLSTATE codes from pgx errors.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports Retryable only for the codes in retryablePgCodes.
// Constraint violations such as a taken email are final.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if _, ok := retryablePgCodes[sqlState(err)]; ok {
		return Retryable
	}
	return NonRetryable
}

// IsUniqueViolation detects a duplicate email on user insert.
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	return sqlState(err) == pgerrcode.UniqueViolation
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if err != nil && errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
