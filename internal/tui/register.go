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

const minPasswordLength = 8

// RegisterModel creates an account. A fresh key pair is generated on the
// client and the private key is wrapped with the chosen password before
// anything is sent.
type RegisterModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	keys    crypto.KeyChain

	form       form
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, serverAdapter adapter.ServerAdapter, keyChain crypto.KeyChain) *RegisterModel {
	return &RegisterModel{
		ctx:     ctx,
		adapter: serverAdapter,
		keys:    keyChain,
		form: newForm(
			formField{label: "Username", placeholder: "username", charLimit: 64},
			formField{label: "Password", placeholder: "password", charLimit: 256, secret: true},
			formField{label: "Repeat", placeholder: "password", charLimit: 256, secret: true},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = registerErrorMessage(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: RegisterSuccessNotice{Username: result.Username}}
		}
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
			if !m.form.isLast() {
				m.form.focusNext()
				return m, nil
			}

			username := strings.TrimSpace(m.form.value(0))
			password := m.form.value(1)
			if errMsg := validateRegistration(username, password, m.form.value(2)); errMsg != "" {
				m.errMsg = errMsg
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(username, password)
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n\n[Registering...]")
	} else {
		b.WriteString("\n\n[Register]")
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("REGISTRATION", b.String(), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(username, password string) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	keyChain := m.keys

	return func() tea.Msg {
		publicKey, encryptedPrivateKey, err := keyChain.NewKeyPair(password)
		if err != nil {
			return RegisterResult{Username: username, Err: fmt.Errorf("generate keys: %w", err)}
		}

		_, err = serverAdapter.Register(ctx, models.RegisterRequest{
			Username:            username,
			Password:            password,
			PublicKey:           publicKey,
			EncryptedPrivateKey: encryptedPrivateKey,
		})
		return RegisterResult{Username: username, Err: err}
	}
}

func validateRegistration(username, password, repeat string) string {
	switch {
	case username == "" || password == "":
		return "Username and password are required"
	case len(password) < minPasswordLength:
		return fmt.Sprintf("Password must be at least %d characters", minPasswordLength)
	case password != repeat:
		return "Passwords do not match"
	}
	return ""
}

func registerErrorMessage(err error) string {
	if errors.Is(err, adapter.ErrConflict) {
		return "Username is already taken"
	}
	return humanizeServerUnavailableError(err)
}
