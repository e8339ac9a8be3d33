// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/MKhiriev/voyager/internal/config"
	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/models"
)

// MongoDB is a connected client together with the database holding the
// users and posts collections.
type MongoDB struct {
	client *mongo.Client
	db     *mongo.Database
	logger *logger.Logger
}

func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*MongoDB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	m := &MongoDB{
		client: client,
		db:     client.Database(cfg.Name),
		logger: log,
	}

	if err = m.ensureIndexes(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error creating indexes")
		_ = client.Disconnect(ctx)
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Name).Msg("connected to database successfully")

	return m, nil
}

// ensureIndexes creates the unique email index and the post lookup indexes.
// Creating an index that already exists is a no-op.
func (m *MongoDB) ensureIndexes(ctx context.Context) error {
	_, err := m.db.Collection(models.User{}.TableName()).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("users_email_uindex").SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error creating users index: %w", err)
	}

	_, err = m.db.Collection(models.Post{}.TableName()).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetName("posts_user_id_idx")},
		{Keys: bson.D{{Key: "created_at", Value: -1}}, Options: options.Index().SetName("posts_created_at_idx")},
	})
	if err != nil {
		return fmt.Errorf("error creating posts indexes: %w", err)
	}

	return nil
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
