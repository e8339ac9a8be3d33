// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/voyager/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageFeed     = "feed"
	pagePost     = "post"
	pageCompose  = "compose"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page before its Init command runs.
type NavigateTo struct {
	Page    string
	Payload any
}

// RefreshFeed asks the feed page to reload posts. Background workers send it
// through [TUI.Send].
type RefreshFeed struct{}

// notice is a one-line status shown by the page that receives it.
type notice struct {
	text string
}

// openPost is the payload of the post page.
type openPost struct {
	post models.Post
}

// composePost is the payload of the compose page. A nil post starts a new one.
type composePost struct {
	post *models.Post
}

// routedMsg is delivered to its page even when that page is not active, so
// async results never land on the wrong model.
type routedMsg interface {
	target() string
}

type authResultMsg struct {
	page    string
	session models.Session
	err     error
}

type feedLoadedMsg struct {
	posts []models.Post
	err   error
}

type postLoadedMsg struct {
	post models.Post
	err  error
}

type postSavedMsg struct {
	post   models.Post
	edited bool
	err    error
}

type postDeletedMsg struct {
	err error
}

type serverInfoMsg struct {
	info models.AppInfo
	err  error
}

func (m authResultMsg) target() string { return m.page }
func (feedLoadedMsg) target() string   { return pageFeed }
func (RefreshFeed) target() string     { return pageFeed }
func (postLoadedMsg) target() string   { return pagePost }
func (postDeletedMsg) target() string  { return pagePost }
func (postSavedMsg) target() string    { return pageCompose }

func navigate(page string, payload any) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
