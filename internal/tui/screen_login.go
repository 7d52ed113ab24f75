// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-writenest/internal/service"
	"github.com/MKhiriev/go-writenest/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginEmail = iota
	loginPassword
)

// loginModel is the login form: email, password and "remember me". notice
// explains why the user was sent here, e.g. by a route guard.
type loginModel struct {
	inputs     []textinput.Model
	focus      int
	remember   bool
	submitting bool
	notice     string
	errMsg     string
}

// newLoginModel creates the form with the email field focused.
func newLoginModel() loginModel {
	email := newInput("email", 254)
	email.Focus()

	return loginModel{
		inputs: []textinput.Model{email, newPasswordInput("password")},
	}
}

// prefill puts email into the form and moves focus to the password.
func (m *loginModel) prefill(email string) {
	m.inputs[loginEmail].SetValue(email)
	m.inputs[loginPassword].SetValue("")
	m.focus = moveFocus(m.inputs, m.focus, loginPassword-m.focus)
}

func (m loginModel) request() models.LoginRequest {
	return models.LoginRequest{
		Email:      m.inputs[loginEmail].Value(),
		Password:   m.inputs[loginPassword].Value(),
		RememberMe: m.remember,
	}
}

// View renders the login form as a two-column table.
func (m loginModel) View() string {
	var b strings.Builder
	if m.notice != "" {
		b.WriteString(statusStyle.Render(m.notice))
		b.WriteString("\n\n")
	}

	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Email     │ [")
	b.WriteString(m.inputs[loginEmail].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[loginPassword].View())
	b.WriteString("]\n")
	b.WriteString("          │ ")
	b.WriteString(checkbox("Remember me", m.remember))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Login]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("LOGIN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ ctrl+t: remember me │ ctrl+o: register │ enter: login")
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.login.notice = ""
			return m.enter(screenCatalog, 0)
		case key.Matches(keyMsg, keys.otherForm):
			m.login.notice = ""
			return m.enter(screenRegister, 0)
		case key.Matches(keyMsg, keys.tab):
			m.login.focus = moveFocus(m.login.inputs, m.login.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.focus = moveFocus(m.login.inputs, m.login.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.toggle):
			m.login.remember = !m.login.remember
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			m.login.errMsg = ""
			m.login.submitting = true
			return m, m.cmdLogin(m.login.request())
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdLogin(req models.LoginRequest) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	return func() tea.Msg {
		identity, err := sessions.Login(ctx, req)
		return loginDoneMsg{identity: identity, err: err}
	}
}

// onLoginDone lands admins on the dashboard and everybody else on the
// catalog.
func (m appModel) onLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	m.login.submitting = false
	if msg.err != nil {
		m.login.errMsg = errorText(msg.err)
		return m, nil
	}

	m.session = m.services.SessionService.Current()
	m.login = newLoginModel()

	if service.IsAdmin(msg.identity) {
		return m.navigate(screenAdmin, 0)
	}
	return m.enter(screenCatalog, 0)
}
