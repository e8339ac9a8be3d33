// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations applies the embedded SQL schema to the configured
// relational backend with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	ErrNilDB             = errors.New("migration error: db is nil")
	ErrUnsupportedDriver = errors.New("migration error: unsupported driver")
)

// dialect maps a database/sql driver name to the goose dialect and the
// embedded directory holding its migrations.
func dialect(driver string) (gooseDialect, dir string, err error) {
	switch driver {
	case "postgres", "pgx":
		return "pgx", "postgres", nil
	case "sqlite3", "sqlite":
		return "sqlite3", "sqlite", nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// Migrate brings db up to the latest schema version for driver
// ("postgres" or "sqlite3").
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return ErrNilDB
	}

	gooseDialect, dir, err := dialect(driver)
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
