// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/voyager/internal/service"
	"github.com/MKhiriev/voyager/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DetailModel shows one post. Its author may edit or delete it.
type DetailModel struct {
	ctx   context.Context
	posts service.ClientPostService

	copyText func(string) error

	post    models.Post
	own     bool
	loading bool
	confirm *dialog
	overlay *dialog
	status  string
	errMsg  string
}

func NewDetailModel(ctx context.Context, posts service.ClientPostService) *DetailModel {
	return &DetailModel{
		ctx:      ctx,
		posts:    posts,
		copyText: clipboard.WriteAll,
	}
}

func (m *DetailModel) Init() tea.Cmd {
	return nil
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openPost:
		m.show(msg.post)
		m.confirm, m.overlay = nil, nil
		m.status, m.errMsg = "", ""
		return m, m.reload()
	case postLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.show(msg.post)
		return m, nil
	case postDeletedMsg:
		if msg.err != nil {
			if cmd := m.fail(msg.err); cmd != nil {
				return m, cmd
			}
			m.overlay = errorDialog(humanizeError(msg.err))
			m.errMsg = ""
			return m, nil
		}
		return m, navigate(pageFeed, notice{text: "Post deleted"})
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *DetailModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.back) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm = nil
			return m, m.cmdDelete(m.post.ID)
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.back):
		return m, navigate(pageFeed, nil)
	case key.Matches(msg, keys.refresh):
		return m, m.reload()
	case key.Matches(msg, keys.copy):
		if err := m.copyText(m.post.Text); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "Copied to clipboard"
	case key.Matches(msg, keys.edit) && m.own:
		post := m.post
		return m, navigate(pageCompose, composePost{post: &post})
	case key.Matches(msg, keys.delete) && m.own:
		m.confirm = confirmDialog("Delete this post?")
	}

	return m, nil
}

// fail handles errors that leave the page. It returns nil when the error
// should be shown in place.
func (m *DetailModel) fail(err error) tea.Cmd {
	switch {
	case sessionLost(err):
		return navigate(pageMenu, notice{text: humanizeError(err)})
	case errors.Is(err, service.ErrPostNotFound):
		return navigate(pageFeed, notice{text: humanizeError(err)})
	}
	m.errMsg = humanizeError(err)
	return nil
}

func (m *DetailModel) show(post models.Post) {
	m.post = post
	m.own = m.posts.IsOwn(post)
}

func (m *DetailModel) reload() tea.Cmd {
	if m.loading || m.post.ID == "" {
		return nil
	}
	m.loading = true

	ctx := m.ctx
	posts := m.posts
	postID := m.post.ID

	return func() tea.Msg {
		post, err := posts.GetPost(ctx, postID)
		return postLoadedMsg{post: post, err: err}
	}
}

func (m *DetailModel) cmdDelete(postID string) tea.Cmd {
	ctx := m.ctx
	posts := m.posts

	return func() tea.Msg {
		return postDeletedMsg{err: posts.DeletePost(ctx, postID)}
	}
}

func (m *DetailModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Author:  %s\n", authorName(m.post)))
	b.WriteString(fmt.Sprintf("Posted:  %s\n", formatTime(m.post.CreatedAt)))
	if m.post.UpdatedAt.After(m.post.CreatedAt) {
		b.WriteString(fmt.Sprintf("Edited:  %s\n", formatTime(m.post.UpdatedAt)))
	}
	b.WriteString("\n")
	b.WriteString(m.post.Text)
	b.WriteString("\n")

	writeFeedback(&b, m.status, m.errMsg)

	switch {
	case m.overlay != nil:
		b.WriteString("\n")
		b.WriteString(m.overlay.View())
	case m.confirm != nil:
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
	}

	hotKeys := "c: copy │ r: reload │ esc: back"
	if m.own {
		hotKeys = "e: edit │ d: delete │ " + hotKeys
	}
	return renderPage("POST", strings.TrimRight(b.String(), "\n"), hotKeys)
}
