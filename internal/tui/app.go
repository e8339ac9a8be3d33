// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/voyager/internal/service"
	"github.com/MKhiriev/voyager/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the version window
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx   context.Context
	users service.ClientUserService

	pages   map[string]tea.Model
	current tea.Model

	buildInfo     models.AppBuildInfo
	serverInfo    models.AppInfo
	serverInfoErr error
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, users service.ClientUserService) RootModel {
	return RootModel{
		ctx:       ctx,
		users:     users,
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.forceQuit):
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && r.allowsBuildInfo():
			r.showBuildInfo = !r.showBuildInfo
			if r.showBuildInfo {
				return r, r.cmdServerInfo()
			}
			return r, nil
		case key.Matches(keyMsg, keys.back) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if msg.Payload == nil {
			return r, next.Init()
		}
		payload := msg.Payload
		return r, tea.Sequence(func() tea.Msg { return payload }, next.Init())
	case serverInfoMsg:
		r.serverInfo, r.serverInfoErr = msg.info, msg.err
		return r, nil
	case routedMsg:
		return r.deliver(msg.target(), msg)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.serverInfo, r.serverInfoErr)
	}
	if r.current == nil {
		return renderPage("VOYAGER", "", "")
	}
	return appStyle.Render(r.current.View())
}

func (r RootModel) deliver(page string, msg tea.Msg) (tea.Model, tea.Cmd) {
	target, exists := r.pages[page]
	if !exists {
		return r, nil
	}

	updated, cmd := target.Update(msg)
	r.pages[page] = updated
	if r.current == target {
		r.current = updated
	}
	return r, cmd
}

// allowsBuildInfo is false on pages with text input, where "v" is typed.
func (r RootModel) allowsBuildInfo() bool {
	switch r.current.(type) {
	case *MenuModel, *FeedModel:
		return true
	}
	return false
}

func (r RootModel) cmdServerInfo() tea.Cmd {
	ctx := r.ctx
	users := r.users

	return func() tea.Msg {
		info, err := users.ServerInfo(ctx)
		return serverInfoMsg{info: info, err: err}
	}
}
