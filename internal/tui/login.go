// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-team-keeper/internal/adapter"
	"github.com/MKhiriev/go-team-keeper/internal/crypto"
	"github.com/MKhiriev/go-team-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the login screen. On submit it
// logs in through the server adapter and unlocks the user's private key
// with the same password. Success produces a [LoginResult] handled by
// [RootModel].
type LoginModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	keys    crypto.KeyChain

	form       form
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with username and masked password
// inputs. The username field is focused.
func NewLoginModel(ctx context.Context, serverAdapter adapter.ServerAdapter, keyChain crypto.KeyChain) *LoginModel {
	return &LoginModel{
		ctx:     ctx,
		adapter: serverAdapter,
		keys:    keyChain,
		form: newForm(
			formField{label: "Username", placeholder: "username", charLimit: 64},
			formField{label: "Password", placeholder: "password", charLimit: 256, secret: true},
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]  clears the submitting state and shows a failure.
//   - esc            goes back to the menu.
//   - tab/shift+tab  moves focus between inputs.
//   - enter          validates the inputs and dispatches the login command.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = loginErrorMessage(result.Err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			m.form.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.form.value(0))
			password := m.form.value(1)
			if username == "" || password == "" {
				m.errMsg = "Username and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	return m, m.form.update(msg)
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n\n[Logging in...]")
	} else {
		b.WriteString("\n\n[Log in]")
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("LOG IN", b.String(), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	keyChain := m.keys

	return func() tea.Msg {
		resp, err := serverAdapter.Login(ctx, models.LoginRequest{Username: username, Password: password})
		if err != nil {
			return LoginResult{Err: err}
		}

		privateKey, err := keyChain.UnlockPrivateKey(resp.User.EncryptedPrivateKey, password)
		if err != nil {
			serverAdapter.SetToken("")
			return LoginResult{Err: fmt.Errorf("unlock private key: %w", err)}
		}

		return LoginResult{Session: Session{User: resp.User, PrivateKey: privateKey}}
	}
}

func loginErrorMessage(err error) string {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Incorrect username or password"
	case errors.Is(err, crypto.ErrWrongPassword), errors.Is(err, crypto.ErrInvalidKey):
		return "Private key cannot be unlocked with this password"
	}
	return humanizeServerUnavailableError(err)
}
