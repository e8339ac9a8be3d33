// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/voyager/internal/utils"
	"github.com/MKhiriev/voyager/models"
)

func (h *Handler) ListPosts(ctx context.Context, request *models.ListPostsRequest) (*models.PostList, error) {
	var filter models.PostFilter
	if request != nil {
		filter.UserID = request.UserID
	}

	posts, err := h.services.PostService.ListPosts(ctx, filter)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &models.PostList{Posts: posts}, nil
}

func (h *Handler) GetPost(ctx context.Context, request *models.PostIDRequest) (*models.Post, error) {
	if request == nil {
		return nil, toStatus(ctx, ErrEmptyRequest)
	}

	post, err := h.services.PostService.GetPost(ctx, request.ID)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &post, nil
}

func (h *Handler) CreatePost(ctx context.Context, request *models.CreatePostRequest) (*models.Post, error) {
	if request == nil {
		return nil, toStatus(ctx, ErrEmptyRequest)
	}
	callerID, _ := utils.GetUserIDFromContext(ctx)

	post, err := h.services.PostService.CreatePost(ctx, callerID, request.Text)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &post, nil
}

func (h *Handler) UpdatePost(ctx context.Context, request *models.UpdatePostRequest) (*models.Post, error) {
	if request == nil {
		return nil, toStatus(ctx, ErrEmptyRequest)
	}
	callerID, _ := utils.GetUserIDFromContext(ctx)

	post, err := h.services.PostService.UpdatePost(ctx, callerID, request.ID, request.PostPatch)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &post, nil
}

func (h *Handler) DeletePost(ctx context.Context, request *models.PostIDRequest) (*models.Empty, error) {
	if request == nil {
		return nil, toStatus(ctx, ErrEmptyRequest)
	}
	callerID, _ := utils.GetUserIDFromContext(ctx)

	if err := h.services.PostService.DeletePost(ctx, callerID, request.ID); err != nil {
		return nil, toStatus(ctx, err)
	}

	return &models.Empty{}, nil
}
