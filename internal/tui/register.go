// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-keeper/internal/session"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RegisterModel is the Bubble Tea model for the registration screen. On
// submission it drives the PAKE registration handshake and, on success,
// immediately logs the freshly-created account in so the flow finishes with
// the same [LoginResult] message the login screen produces.
type RegisterModel struct {
	ctx    context.Context
	locked *session.LockedSession

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with email, passphrase, and
// passphrase-repeat inputs.
func NewRegisterModel(ctx context.Context, locked *session.LockedSession) *RegisterModel {
	fields := make([]textinput.Model, 3)

	fields[0] = textinput.New()
	fields[0].Placeholder = "email"
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "master passphrase"
	fields[1].EchoMode = textinput.EchoPassword
	fields[1].EchoCharacter = '*'
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "repeat passphrase"
	fields[2].EchoMode = textinput.EchoPassword
	fields[2].EchoCharacter = '*'
	fields[2].Width = 40

	return &RegisterModel{ctx: ctx, locked: locked, inputs: fields}
}

// Init implements [tea.Model].
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [RegisterResult] — on success, chains into an async login; on error, populates errMsg.
//   - [LoginResult]    — clears submitting state; on error, populates errMsg
//     (RootModel captures a successful result before it reaches this page).
//   - esc              — cancels and navigates back to the menu.
//   - tab / shift+tab  — moves focus between inputs.
//   - enter            — validates inputs and dispatches the async register command.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case RegisterResult:
		if result.Err != nil {
			m.submitting = false
			m.errMsg = humanizeServerUnavailableError(result.Err)
			return m, nil
		}
		pass := m.inputs[1].Value()
		return m, m.cmdLoginAfterRegister(result.Email, pass)
	case LoginResult:
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeServerUnavailableError(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			repeat := m.inputs[2].Value()
			if email == "" || pass == "" {
				m.errMsg = "Email и пароль обязательны"
				return m, nil
			}
			if pass != repeat {
				m.errMsg = "Пароли не совпадают"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(email, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Email:         [" + m.inputs[0].View() + "]\n")
	b.WriteString("Пароль:        [" + m.inputs[1].View() + "]\n")
	b.WriteString("Повтор пароля: [" + m.inputs[2].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Зарегистрироваться...]\n")
	} else {
		b.WriteString("\n[Зарегистрироваться]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}

	return renderPage("РЕГИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *RegisterModel) cmdRegister(email, pass string) tea.Cmd {
	ctx := m.ctx
	locked := m.locked

	return func() tea.Msg {
		if _, err := locked.Register(ctx, email, []byte(pass)); err != nil {
			return RegisterResult{Err: err, Email: email}
		}
		return RegisterResult{Email: email}
	}
}

func (m *RegisterModel) cmdLoginAfterRegister(email, pass string) tea.Cmd {
	ctx := m.ctx
	locked := m.locked

	return func() tea.Msg {
		unlocked, _, err := locked.Login(ctx, email, []byte(pass))
		if err != nil {
			return LoginResult{Err: err, Email: email}
		}
		return LoginResult{Email: email, Session: unlocked}
	}
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
