// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/voyager/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	menuLogin = iota
	menuRegister
	menuQuit
)

// MenuModel is the start page for signed-out users.
type MenuModel struct {
	auth service.ClientAuthService

	items  []string
	idx    int
	status string
}

func NewMenuModel(auth service.ClientAuthService) *MenuModel {
	return &MenuModel{
		auth:  auth,
		items: []string{"Log in", "Register", "Quit"},
	}
}

// Init skips the menu when a session is already open.
func (m *MenuModel) Init() tea.Cmd {
	if _, ok := m.auth.Session(); ok {
		return navigate(pageFeed, nil)
	}
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if n, ok := msg.(notice); ok {
		m.status = n.text
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.enter):
		m.status = ""
		switch m.idx {
		case menuLogin:
			return m, navigate(pageLogin, nil)
		case menuRegister:
			return m, navigate(pageRegister, nil)
		default:
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	idColWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items))) + 2
	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		actionColWidth = max(actionColWidth, lipgloss.Width(item))
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "#", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item))
	}

	writeFeedback(&b, m.status, "")

	return renderPage("VOYAGER", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ v: version │ q: quit")
}
