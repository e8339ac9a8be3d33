// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/internal/utils"
	"github.com/MKhiriev/voyager/models"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	filter := models.PostFilter{UserID: r.URL.Query().Get("user_id")}

	posts, err := h.services.PostService.ListPosts(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.services.PostService.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	callerID, _ := utils.GetUserIDFromContext(ctx)

	var request models.CreatePostRequest
	if err := decodeJSON(w, r, &request); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid request body")
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.CreatePost(ctx, callerID, request.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, post, http.StatusCreated)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	callerID, _ := utils.GetUserIDFromContext(ctx)

	var patch models.PostPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid request body")
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.UpdatePost(ctx, callerID, chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	callerID, _ := utils.GetUserIDFromContext(ctx)

	if err := h.services.PostService.DeletePost(ctx, callerID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, models.Empty{}, http.StatusOK)
}
