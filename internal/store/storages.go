// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/voyager/internal/config"
	"github.com/MKhiriev/voyager/internal/logger"
)

// Storages bundles the repositories of the selected backend.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository

	close func(ctx context.Context) error
}

// NewStorages connects to the backend named by cfg.DB.Driver, applies the
// schema (SQL backends) or indexes (MongoDB) and returns its repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return newSQLStorages(db, log)

	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return newSQLStorages(db, log)

	case config.DriverMongo:
		db, err := NewConnectMongo(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return &Storages{
			UserRepository: NewMongoUserRepository(db, log),
			PostRepository: NewMongoPostRepository(db, log),
			close:          db.Close,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DB.Driver)
}

func newSQLStorages(db *DB, log *logger.Logger) (*Storages, error) {
	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "newSQLStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	log.Info().Str("func", "newSQLStorages").Str("driver", db.Driver()).Msg("schema is up to date")

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
		close: func(context.Context) error {
			return db.Close()
		},
	}, nil
}

// Close releases the underlying connection pool or client.
func (s *Storages) Close(ctx context.Context) error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close(ctx)
}
