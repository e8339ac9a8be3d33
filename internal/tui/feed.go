// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/voyager/internal/service"
	"github.com/MKhiriev/voyager/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const feedTextWidth = 48

// FeedModel lists posts newest first. It reloads on entry, on "r" and on
// every [RefreshFeed].
type FeedModel struct {
	ctx   context.Context
	posts service.ClientPostService
	auth  service.ClientAuthService

	items    []models.Post
	idx      int
	onlyMine bool
	loading  bool
	spinner  spinner.Model
	status   string
	errMsg   string
}

func NewFeedModel(ctx context.Context, posts service.ClientPostService, auth service.ClientAuthService) *FeedModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &FeedModel{
		ctx:     ctx,
		posts:   posts,
		auth:    auth,
		spinner: s,
	}
}

func (m *FeedModel) Init() tea.Cmd {
	return m.reload()
}

func (m *FeedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notice:
		m.status = msg.text
		return m, nil
	case RefreshFeed:
		if _, ok := m.auth.Session(); !ok {
			return m, nil
		}
		return m, m.reload()
	case feedLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if sessionLost(msg.err) {
				m.reset()
				return m, navigate(pageMenu, notice{text: humanizeError(msg.err)})
			}
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}

		m.errMsg = ""
		m.items = msg.posts
		if m.idx >= len(m.items) {
			m.idx = max(len(m.items)-1, 0)
		}
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *FeedModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if post, ok := m.current(); ok {
			m.status = ""
			return m, navigate(pagePost, openPost{post: post})
		}
	case key.Matches(msg, keys.refresh):
		m.status = ""
		return m, m.reload()
	case key.Matches(msg, keys.mine):
		m.onlyMine = !m.onlyMine
		m.idx = 0
		return m, m.reload()
	case key.Matches(msg, keys.newPost):
		m.status = ""
		return m, navigate(pageCompose, composePost{})
	case key.Matches(msg, keys.logout):
		m.auth.Logout()
		m.reset()
		return m, navigate(pageMenu, notice{text: "Logged out"})
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

// reload is a no-op while a load is in flight.
func (m *FeedModel) reload() tea.Cmd {
	if m.loading {
		return nil
	}
	m.loading = true
	return tea.Batch(m.cmdLoad(m.filter()), m.spinner.Tick)
}

func (m *FeedModel) filter() models.PostFilter {
	if !m.onlyMine {
		return models.PostFilter{}
	}
	session, _ := m.auth.Session()
	return models.PostFilter{UserID: session.UserID}
}

func (m *FeedModel) cmdLoad(filter models.PostFilter) tea.Cmd {
	ctx := m.ctx
	posts := m.posts

	return func() tea.Msg {
		items, err := posts.Feed(ctx, filter)
		return feedLoadedMsg{posts: items, err: err}
	}
}

func (m *FeedModel) current() (models.Post, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Post{}, false
	}
	return m.items[m.idx], true
}

func (m *FeedModel) reset() {
	m.items = nil
	m.idx = 0
	m.onlyMine = false
	m.status = ""
	m.errMsg = ""
}

func (m *FeedModel) View() string {
	var b strings.Builder

	title := "FEED"
	if m.onlyMine {
		title = "MY POSTS"
	}
	if m.loading {
		title += "  " + m.spinner.View()
	}

	if len(m.items) == 0 && !m.loading {
		b.WriteString("No posts yet\n")
	}
	for i, post := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		author := authorName(post)
		if m.posts.IsOwn(post) {
			author = ownStyle.Render(author)
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s\n", cursor, formatTime(post.CreatedAt), author, firstLine(post.Text, feedTextWidth)))
	}
	writeFeedback(&b, m.status, m.errMsg)

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new │ r: refresh │ m: mine/all │ l: log out │ v: version │ q: quit")
}
