// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/voyager/models"
)

var (
	userColumns = []string{"user_id", "name", "email", "password", "created_at", "updated_at"}
	postColumns = []string{"id", "user_id", "text", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.UserID, user.Name, user.Email, user.Password, user.CreatedAt, user.UpdatedAt).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreatePostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	query, args, err := b.
		Insert(post.TableName()).
		Columns(postColumns...).
		Values(post.ID, post.UserID, post.Text, post.CreatedAt, post.UpdatedAt).
		Suffix(returning(postColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindPostQuery(b sq.StatementBuilderType, postID string) (string, []any, error) {
	query, args, err := b.
		Select(postColumns...).
		From(models.Post{}.TableName()).
		Where(sq.Eq{"id": postID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListPostsQuery selects posts newest first. Ties on created_at are
// broken by id, which is time ordered.
func buildListPostsQuery(b sq.StatementBuilderType, filter models.PostFilter) (string, []any, error) {
	q := b.
		Select(postColumns...).
		From(models.Post{}.TableName()).
		OrderBy("created_at DESC", "id DESC")

	if filter.UserID != "" {
		q = q.Where(sq.Eq{"user_id": filter.UserID})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdatePostQuery sets updated_at and every non-nil field of update.
// The WHERE clause always pins both id and user_id.
func buildUpdatePostQuery(b sq.StatementBuilderType, update models.PostUpdate) (string, []any, error) {
	q := b.
		Update(models.Post{}.TableName()).
		Set("updated_at", update.UpdatedAt)

	if update.Text != nil {
		q = q.Set("text", *update.Text)
	}

	query, args, err := q.
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix(returning(postColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeletePostQuery(b sq.StatementBuilderType, postID, userID string) (string, []any, error) {
	query, args, err := b.
		Delete(models.Post{}.TableName()).
		Where(sq.Eq{"id": postID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
