// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/models"
)

// postRepository is the SQL implementation of [PostRepository] shared by the
// PostgreSQL and SQLite backends. It works against the "posts" table.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

func postFields(p *models.Post) []any {
	return []any{&p.ID, &p.UserID, &p.Text, &p.CreatedAt, &p.UpdatedAt}
}

func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreatePostQuery(r.db.builder(), post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error building query")
		return models.Post{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error inserting post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var created models.Post
	if err = row.Scan(postFields(&created)...); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error: scanning error")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

func (r *postRepository) FindPostByID(ctx context.Context, postID string) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPostQuery(r.db.builder(), postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindPostByID").Msg("error building query")
		return models.Post{}, err
	}

	var post models.Post
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(postFields(&post)...)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindPostByID").Msg("error finding post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return post, nil
}

func (r *postRepository) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(r.db.builder(), filter)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error building query")
		return nil, err
	}

	var rows *sql.Rows
	err = r.db.withRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = r.db.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error listing posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var post models.Post
		if err = rows.Scan(postFields(&post)...); err != nil {
			log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error scanning post")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error iterating posts")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// UpdatePost returns [ErrPostNotFound] when no row has both update.ID and
// update.UserID.
func (r *postRepository) UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(r.db.builder(), update)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error building query")
		return models.Post{}, err
	}

	var post models.Post
	err = r.db.QueryRowContext(ctx, query, args...).Scan(postFields(&post)...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error updating post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return post, nil
}

// DeletePost returns [ErrPostNotFound] when no row has both postID and
// userID.
func (r *postRepository) DeletePost(ctx context.Context, postID, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePostQuery(r.db.builder(), postID, userID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error building query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error deleting post")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}
