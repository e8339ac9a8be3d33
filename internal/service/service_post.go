// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/internal/store"
	"github.com/MKhiriev/voyager/internal/validators"
	"github.com/MKhiriev/voyager/models"
)

// postService is the core PostService. It expects callers to have passed
// the validation wrapper; ownership and patch rules are enforced here.
type postService struct {
	postRepository store.PostRepository
	userRepository store.UserRepository
	validator      validators.Validator
	ids            IDGenerator

	now func() time.Time

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, userRepository store.UserRepository, ids IDGenerator, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		userRepository: userRepository,
		validator:      validators.NewPostValidator(),
		ids:            ids,
		now:            time.Now,
		logger:         logger,
	}
}

// CreatePost stores text as a new post of callerID.
// Returns ErrUserNotFound if the caller no longer exists.
func (s *postService) CreatePost(ctx context.Context, callerID, text string) (models.Post, error) {
	log := logger.FromContext(ctx)

	author, err := s.findAuthor(ctx, callerID)
	if err != nil {
		return models.Post{}, err
	}

	now := s.now().UTC()
	post, err := s.postRepository.CreatePost(ctx, models.Post{
		ID:        s.ids.Generate(),
		UserID:    callerID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		log.Err(err).Str("func", "*postService.CreatePost").Str("user_id", callerID).Msg("post creation failed")
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}

	post.Author = &author
	return post, nil
}

// ListPosts returns every post matching filter, newest first, with authors.
func (s *postService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	posts, err := s.postRepository.ListPosts(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postService.ListPosts").Msg("listing posts failed")
		return nil, fmt.Errorf("listing posts failed: %w", err)
	}

	if err = s.populateAuthors(ctx, posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (s *postService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}

	posts := []models.Post{post}
	if err = s.populateAuthors(ctx, posts); err != nil {
		return models.Post{}, err
	}

	return posts[0], nil
}

// UpdatePost applies patch to postID on behalf of callerID.
//
// Ownership is checked before the patch is looked at, so a non-owner gets
// ErrUnauthorizedAccessToDifferentUserData even for an invalid patch. An
// empty patch returns the post unchanged.
func (s *postService) UpdatePost(ctx context.Context, callerID, postID string, patch models.PostPatch) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := s.findPost(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}

	if err = AssertOwner(post.UserID, callerID); err != nil {
		log.Warn().Str("post_id", postID).Str("user_id", callerID).Msg("update of a foreign post rejected")
		return models.Post{}, err
	}

	if err = s.validator.Validate(ctx, patch); err != nil {
		return models.Post{}, validationError(err)
	}

	if !patch.IsEmpty() {
		post, err = s.postRepository.UpdatePost(ctx, models.PostUpdate{
			ID:        postID,
			UserID:    callerID,
			Text:      patch.Text,
			UpdatedAt: s.now().UTC(),
		})
		if errors.Is(err, store.ErrPostNotFound) {
			return models.Post{}, ErrPostNotFound
		}
		if err != nil {
			log.Err(err).Str("func", "*postService.UpdatePost").Str("post_id", postID).Msg("post update failed")
			return models.Post{}, fmt.Errorf("post update failed: %w", err)
		}
	}

	posts := []models.Post{post}
	if err = s.populateAuthors(ctx, posts); err != nil {
		return models.Post{}, err
	}

	return posts[0], nil
}

func (s *postService) DeletePost(ctx context.Context, callerID, postID string) error {
	log := logger.FromContext(ctx)

	post, err := s.findPost(ctx, postID)
	if err != nil {
		return err
	}

	if err = AssertOwner(post.UserID, callerID); err != nil {
		log.Warn().Str("post_id", postID).Str("user_id", callerID).Msg("deletion of a foreign post rejected")
		return err
	}

	err = s.postRepository.DeletePost(ctx, postID, callerID)
	if errors.Is(err, store.ErrPostNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postService.DeletePost").Str("post_id", postID).Msg("post deletion failed")
		return fmt.Errorf("post deletion failed: %w", err)
	}

	return nil
}

func (s *postService) findPost(ctx context.Context, postID string) (models.Post, error) {
	if postID == "" {
		return models.Post{}, ErrPostNotFound
	}

	post, err := s.postRepository.FindPostByID(ctx, postID)
	if errors.Is(err, store.ErrPostNotFound) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postService.findPost").Str("post_id", postID).Msg("post search failed")
		return models.Post{}, fmt.Errorf("post search failed: %w", err)
	}

	return post, nil
}

func (s *postService) findAuthor(ctx context.Context, userID string) (models.UserProfile, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.UserProfile{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postService.findAuthor").Str("user_id", userID).Msg("user search failed")
		return models.UserProfile{}, fmt.Errorf("user search failed: %w", err)
	}

	return user.Profile(), nil
}

// populateAuthors fills Author of every post, looking each user up once.
// Posts whose author has been removed keep a nil Author.
func (s *postService) populateAuthors(ctx context.Context, posts []models.Post) error {
	authors := make(map[string]*models.UserProfile)

	for i := range posts {
		userID := posts[i].UserID
		author, seen := authors[userID]
		if !seen {
			profile, err := s.findAuthor(ctx, userID)
			switch {
			case errors.Is(err, ErrUserNotFound):
				author = nil
			case err != nil:
				return err
			default:
				author = &profile
			}
			authors[userID] = author
		}
		posts[i].Author = author
	}

	return nil
}
