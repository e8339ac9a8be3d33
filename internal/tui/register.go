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
	registerName = iota
	registerEmail
	registerPassword
	registerRepeat
)

// RegisterModel is the Bubble Tea model for the registration screen. It
// renders name, email, password and password confirmation inputs. A
// successful registration signs the user in and opens the feed.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       inputForm
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newInputForm(
			formField{label: "Name", limit: 100, trimmed: true, required: true},
			formField{label: "Email", limit: 254, trimmed: true, required: true},
			formField{label: "Password", limit: 72, secret: true, required: true},
			formField{label: "Repeat password", limit: 72, secret: true, required: true},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - authResultMsg: on error shows it, on success resets the form and opens the feed.
//   - esc: back to the menu.
//   - enter: checks required fields and the password repeat, then registers.
//
// Other keys go to the form.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		return m, navigate(pageFeed, notice{text: "Welcome, " + sessionName(result.session)})
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
			if m.form.value(registerPassword) != m.form.value(registerRepeat) {
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(models.RegisterRequest{
				Name:     m.form.value(registerName),
				Email:    m.form.value(registerEmail),
				Password: m.form.value(registerPassword),
			})
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	m.form.view(&b)

	if m.submitting {
		b.WriteString("\n[Register...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}
	writeFeedback(&b, "", m.errMsg)

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(request models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Register(ctx, request)
		return authResultMsg{page: pageRegister, session: session, err: err}
	}
}
