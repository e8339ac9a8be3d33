// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/voyager/internal/service"
	"github.com/MKhiriev/voyager/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// ComposeModel writes a new post or edits an existing one.
type ComposeModel struct {
	ctx   context.Context
	posts service.ClientPostService

	editing *models.Post
	area    textarea.Model
	saving  bool
	errMsg  string
}

func NewComposeModel(ctx context.Context, posts service.ClientPostService) *ComposeModel {
	area := textarea.New()
	area.Placeholder = "What's happening?"
	area.CharLimit = 0
	area.SetWidth(60)
	area.SetHeight(6)
	area.Focus()

	return &ComposeModel{
		ctx:   ctx,
		posts: posts,
		area:  area,
	}
}

func (m *ComposeModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *ComposeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case composePost:
		m.editing = msg.post
		m.saving = false
		m.errMsg = ""
		m.area.Reset()
		if msg.post != nil {
			m.area.SetValue(msg.post.Text)
		}
		m.area.Focus()
		return m, nil
	case postSavedMsg:
		m.saving = false
		if msg.err != nil {
			if sessionLost(msg.err) {
				return m, navigate(pageMenu, notice{text: humanizeError(msg.err)})
			}
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}

		m.area.Reset()
		if msg.edited {
			return m, navigate(pagePost, openPost{post: msg.post})
		}
		return m, navigate(pageFeed, notice{text: "Post published"})
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.back):
			m.errMsg = ""
			if m.editing != nil {
				return m, navigate(pagePost, openPost{post: *m.editing})
			}
			return m, navigate(pageFeed, nil)
		case key.Matches(msg, keys.submit):
			if m.saving {
				return m, nil
			}
			m.errMsg = ""
			m.saving = true
			return m, m.cmdSave(m.area.Value())
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

func (m *ComposeModel) cmdSave(text string) tea.Cmd {
	ctx := m.ctx
	posts := m.posts

	if m.editing != nil {
		postID := m.editing.ID
		return func() tea.Msg {
			post, err := posts.EditPost(ctx, postID, text)
			return postSavedMsg{post: post, edited: true, err: err}
		}
	}

	return func() tea.Msg {
		post, err := posts.CreatePost(ctx, text)
		return postSavedMsg{post: post, err: err}
	}
}

func (m *ComposeModel) View() string {
	var b strings.Builder
	b.WriteString(m.area.View())
	b.WriteString("\n")

	if m.saving {
		b.WriteString("\nSaving...\n")
	}
	writeFeedback(&b, "", m.errMsg)

	title := "NEW POST"
	if m.editing != nil {
		title = "EDIT POST"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "ctrl+s: save │ esc: cancel")
}
