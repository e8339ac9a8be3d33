// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/models"
)

// mongoPostRepository is the MongoDB implementation of [PostRepository].
type mongoPostRepository struct {
	posts  *mongo.Collection
	logger *logger.Logger
}

func NewMongoPostRepository(db *MongoDB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating mongo post repository")
	return &mongoPostRepository{
		posts:  db.db.Collection(models.Post{}.TableName()),
		logger: logger,
	}
}

func (r *mongoPostRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	post.Author = nil

	if _, err := r.posts.InsertOne(ctx, post); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoPostRepository.CreatePost").Msg("error inserting post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return post, nil
}

func (r *mongoPostRepository) FindPostByID(ctx context.Context, postID string) (models.Post, error) {
	var post models.Post
	err := r.posts.FindOne(ctx, bson.D{{Key: "_id", Value: postID}}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoPostRepository.FindPostByID").Msg("error finding post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return post, nil
}

func (r *mongoPostRepository) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query := bson.D{}
	if filter.UserID != "" {
		query = append(query, bson.E{Key: "user_id", Value: filter.UserID})
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.posts.Find(ctx, query, opts)
	if err != nil {
		log.Err(err).Str("func", "*mongoPostRepository.ListPosts").Msg("error listing posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	posts := make([]models.Post, 0)
	if err = cursor.All(ctx, &posts); err != nil {
		log.Err(err).Str("func", "*mongoPostRepository.ListPosts").Msg("error decoding posts")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

func (r *mongoPostRepository) UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error) {
	set := bson.D{{Key: "updated_at", Value: update.UpdatedAt}}
	if update.Text != nil {
		set = append(set, bson.E{Key: "text", Value: *update.Text})
	}

	filter := bson.D{{Key: "_id", Value: update.ID}, {Key: "user_id", Value: update.UserID}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.Post
	err := r.posts.FindOneAndUpdate(ctx, filter, bson.D{{Key: "$set", Value: set}}, opts).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoPostRepository.UpdatePost").Msg("error updating post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return post, nil
}

func (r *mongoPostRepository) DeletePost(ctx context.Context, postID, userID string) error {
	result, err := r.posts.DeleteOne(ctx, bson.D{{Key: "_id", Value: postID}, {Key: "user_id", Value: userID}})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoPostRepository.DeletePost").Msg("error deleting post")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if result.DeletedCount == 0 {
		return ErrPostNotFound
	}

	return nil
}
