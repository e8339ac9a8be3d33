// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/migrations"
)

// DB is a database/sql pool together with the dialect details the
// repositories need: the placeholder style for squirrel and the driver
// specific error classifier.
type DB struct {
	*sql.DB
	driver             string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// openPool opens a database/sql pool for driverName and pings it. The pool is
// closed again when the ping fails.
func openPool(ctx context.Context, driverName, dsn string, maxOpen int, log *logger.Logger) (*sql.DB, error) {
	conn, err := sql.Open(driverName, dsn)
	if err != nil {
		log.Err(err).Str("func", "openPool").Str("driver", driverName).Msg("error opening database pool")
		return nil, fmt.Errorf("error opening %s pool: %w", driverName, err)
	}
	conn.SetMaxOpenConns(maxOpen)
	conn.SetMaxIdleConns(min(maxOpen, 4))

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "openPool").Str("driver", driverName).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "openPool").Str("driver", driverName).Msg("connected to database successfully")

	return conn, nil
}

// Migrate applies the embedded schema for the pool's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Driver returns the database/sql driver name of the pool.
func (db *DB) Driver() string {
	return db.driver
}

// builder returns a squirrel statement builder bound to the pool's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

const (
	// maxReadRetries is the number of repeats after the first failed read.
	maxReadRetries = 2
	retryBaseDelay = 50 * time.Millisecond
)

// withRetry runs op and repeats it with exponential backoff while the
// classifier reports the failure as transient. A done ctx ends the loop with
// ctx.Err().
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	backoff := retry.WithMaxRetries(maxReadRetries, retry.NewExponential(retryBaseDelay))

	return retry.Do(ctx, backoff, func(context.Context) error {
		err := op()
		if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			return retry.RetryableError(err)
		}
		return err
	})
}
