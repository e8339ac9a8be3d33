// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/voyager/internal/service"
	"github.com/MKhiriev/voyager/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginEmail = iota
	loginPassword
)

// LoginModel is the Bubble Tea model for the login screen. It renders the
// email and password inputs and dispatches an async login command on enter.
// A successful login opens the feed.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       inputForm
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: newInputForm(
			formField{label: "Email", limit: 254, trimmed: true, required: true},
			formField{label: "Password", limit: 72, secret: true, required: true},
		),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - authResultMsg: on error shows it, on success resets the form and opens the feed.
//   - esc: back to the menu.
//   - enter: checks required fields and dispatches the login command.
//
// Other keys go to the form.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		return m, navigate(pageFeed, notice{text: "Signed in as " + sessionName(result.session)})
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.back):
			m.submitting = false
			m.errMsg = ""
			return m, navigate(pageMenu, nil)
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			if label, missing := m.form.missing(); missing {
				m.errMsg = label + " is required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(models.LoginRequest{
				Email:    m.form.value(loginEmail),
				Password: m.form.value(loginPassword),
			})
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	m.form.view(&b)

	if m.submitting {
		b.WriteString("\n[Log in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}
	writeFeedback(&b, "", m.errMsg)

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(request models.LoginRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Login(ctx, request)
		return authResultMsg{page: pageLogin, session: session, err: err}
	}
}

func sessionName(session models.Session) string {
	if session.Name != "" {
		return session.Name
	}
	return session.Email
}
