package tui

import (
	"github.com/MKhiriev/go-team-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// NavigateTo switches the active page of [RootModel]. A non-nil Payload is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the login flow when Err is nil.
type LoginResult struct {
	Session Session
	Err     error
}

// RegisterResult is produced by the registration command.
type RegisterResult struct {
	Username string
	Err      error
}

// RegisterSuccessNotice is shown on the menu after a registration.
type RegisterSuccessNotice struct {
	Username string
}

type dataLoadedMsg struct {
	credentials  []models.CredentialPublic
	teams        []models.TeamDetailed
	applications []models.MyApplication
	err          error
}

type credentialSavedMsg struct {
	credential models.CredentialPublic
	err        error
}

type credentialDeletedMsg struct {
	err error
}

type copiedMsg struct {
	recordName string
	err        error
}

type teamCreatedMsg struct {
	team models.TeamPublic
	err  error
}

type appliedMsg struct {
	code string
	err  error
}
