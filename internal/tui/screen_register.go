package tui

import (
	"strings"

	"github.com/MKhiriev/go-writenest/internal/app"
	"github.com/MKhiriev/go-writenest/internal/service"
	"github.com/MKhiriev/go-writenest/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	registerName = iota
	registerEmail
	registerPassword
	registerConfirm
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	agreeTerms bool
	submitting bool
	errMsg     string
}

func newRegisterModel() registerModel {
	name := newInput("full name", 100)
	name.Focus()

	return registerModel{
		inputs: []textinput.Model{
			name,
			newInput("email", 254),
			newPasswordInput("password"),
			newPasswordInput("confirm password"),
		},
	}
}

func (m registerModel) form() models.RegisterForm {
	return models.RegisterForm{
		Name:            m.inputs[registerName].Value(),
		Email:           m.inputs[registerEmail].Value(),
		Password:        m.inputs[registerPassword].Value(),
		ConfirmPassword: m.inputs[registerConfirm].Value(),
		AgreeTerms:      m.agreeTerms,
	}
}

func (m registerModel) View() string {
	var b strings.Builder
	b.WriteString("Name      │ [" + m.inputs[registerName].View() + "]\n")
	b.WriteString("Email     │ [" + m.inputs[registerEmail].View() + "]\n")
	b.WriteString("Password  │ [" + m.inputs[registerPassword].View() + "]\n")

	strength := service.PasswordStrength(m.inputs[registerPassword].Value())
	if strength != service.StrengthNone {
		b.WriteString("          │ strength: " + badgeStyle.Render(strength.String()) + "\n")
	}

	b.WriteString("Confirm   │ [" + m.inputs[registerConfirm].View() + "]\n")
	b.WriteString("          │ " + checkbox("I agree to the Terms & Conditions", m.agreeTerms) + "\n")

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ ctrl+t: accept terms │ ctrl+o: login │ enter: register")
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m.enter(screenCatalog, 0)
		case key.Matches(keyMsg, keys.otherForm):
			return m.enter(screenLogin, 0)
		case key.Matches(keyMsg, keys.tab):
			m.register.focus = moveFocus(m.register.inputs, m.register.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.focus = moveFocus(m.register.inputs, m.register.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.toggle):
			m.register.agreeTerms = !m.register.agreeTerms
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			m.register.errMsg = ""
			m.register.submitting = true
			return m, m.cmdRegister(m.register.form())
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdRegister(form models.RegisterForm) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	return func() tea.Msg {
		_, err := sessions.Register(ctx, form)
		return registerDoneMsg{email: strings.TrimSpace(form.Email), err: err}
	}
}

// onRegisterDone sends the user to the login form with the email filled in.
func (m appModel) onRegisterDone(msg registerDoneMsg) (tea.Model, tea.Cmd) {
	m.register.submitting = false
	if msg.err != nil {
		m.register.errMsg = errorText(msg.err)
		return m, nil
	}

	m.login = newLoginModel()
	m.login.prefill(msg.email)
	m.login.notice = app.MsgRegistrationPrompt
	return m.enter(screenLogin, 0)
}
