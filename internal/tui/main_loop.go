package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-team-keeper/internal/adapter"
	"github.com/MKhiriev/go-team-keeper/internal/crypto"
	"github.com/MKhiriev/go-team-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

const requestTimeout = 15 * time.Second

type tab int

const (
	tabCredentials tab = iota
	tabTeams
	tabApplications
)

var tabTitles = []string{"Credentials", "Teams", "Applications"}

type mode int

const (
	modeBrowse mode = iota
	modeConfirmDelete
	modeNewCredential
	modeApply
	modeNewTeam
)

type mainLoopModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	keys    crypto.KeyChain
	session Session

	tab  tab
	mode mode
	idx  [3]int

	credentials  []models.CredentialPublic
	teams        []models.TeamDetailed
	applications []models.MyApplication

	loading bool
	busy    bool
	status  string
	errMsg  string

	credentialForm form
	applyForm      form
	teamForm       form

	logout bool
}

func newMainLoopModel(ctx context.Context, serverAdapter adapter.ServerAdapter, keyChain crypto.KeyChain, session Session) mainLoopModel {
	return mainLoopModel{
		ctx:     ctx,
		adapter: serverAdapter,
		keys:    keyChain,
		session: session,
		loading: true,
		credentialForm: newForm(
			formField{label: "Name", placeholder: "record name", charLimit: 128},
			formField{label: "URL", placeholder: "https://", charLimit: 512},
			formField{label: "Login", placeholder: "login", charLimit: 256},
			formField{label: "Password", placeholder: "password", charLimit: 256, secret: true},
		),
		applyForm: newForm(formField{label: "Team code", placeholder: "ABCD1234", charLimit: 32}),
		teamForm:  newForm(formField{label: "Team name", placeholder: "name", charLimit: 128}),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dataLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.credentials = msg.credentials
		m.teams = msg.teams
		m.applications = msg.applications
		m.clampCursors()
		return m, nil

	case credentialSavedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = credentialErrorMessage(msg.err)
			return m, nil
		}
		m.mode = modeBrowse
		m.credentialForm.reset()
		m.status = "Credential " + msg.credential.RecordName + " saved"
		m.loading = true
		return m, m.cmdLoad()

	case credentialDeletedMsg:
		m.busy = false
		m.mode = modeBrowse
		if msg.err != nil {
			m.errMsg = credentialErrorMessage(msg.err)
			return m, nil
		}
		m.status = "Credential deleted"
		m.loading = true
		return m, m.cmdLoad()

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Copy failed: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Password of " + msg.recordName + " copied to clipboard"
		return m, nil

	case teamCreatedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = teamErrorMessage(msg.err)
			return m, nil
		}
		m.mode = modeBrowse
		m.teamForm.reset()
		m.status = fmt.Sprintf("Team %s created, invite code %s", msg.team.Name, msg.team.Code)
		m.loading = true
		return m, m.cmdLoad()

	case appliedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = teamErrorMessage(msg.err)
			return m, nil
		}
		m.mode = modeBrowse
		m.applyForm.reset()
		m.status = "Applied to team " + msg.code
		m.loading = true
		return m, m.cmdLoad()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modeNewCredential:
			return m.updateCredentialForm(msg)
		case modeApply:
			return m.updateApplyForm(msg)
		case modeNewTeam:
			return m.updateTeamForm(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m mainLoopModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.nextTab):
		m.tab = (m.tab + 1) % tab(len(tabTitles))
		m.errMsg = ""
	case key.Matches(msg, keys.prevTab):
		m.tab = (m.tab - 1 + tab(len(tabTitles))) % tab(len(tabTitles))
		m.errMsg = ""
	case key.Matches(msg, keys.up):
		if m.idx[m.tab] > 0 {
			m.idx[m.tab]--
		}
	case key.Matches(msg, keys.down):
		if m.idx[m.tab] < m.rowCount()-1 {
			m.idx[m.tab]++
		}
	case key.Matches(msg, keys.refresh):
		m.loading = true
		m.status = ""
		return m, m.cmdLoad()
	case key.Matches(msg, keys.newItem):
		m.mode = modeNewCredential
		m.errMsg = ""
		m.credentialForm.reset()
	case key.Matches(msg, keys.apply):
		m.mode = modeApply
		m.errMsg = ""
		m.applyForm.reset()
	case key.Matches(msg, keys.newTeam):
		m.mode = modeNewTeam
		m.errMsg = ""
		m.teamForm.reset()
	case key.Matches(msg, keys.copy):
		if credential, ok := m.selectedCredential(); ok {
			return m, m.cmdCopy(credential)
		}
	case key.Matches(msg, keys.delete):
		if _, ok := m.selectedCredential(); ok {
			m.mode = modeConfirmDelete
			m.status = ""
		}
	}

	return m, nil
}

func (m mainLoopModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		if m.busy {
			return m, nil
		}
		credential, ok := m.selectedCredential()
		if !ok {
			m.mode = modeBrowse
			return m, nil
		}
		m.busy = true
		return m, m.cmdDelete(credential.CredentialID)
	case key.Matches(msg, keys.no):
		m.mode = modeBrowse
	}
	return m, nil
}

func (m mainLoopModel) updateCredentialForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeBrowse
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.busy {
			return m, nil
		}
		if !m.credentialForm.isLast() {
			m.credentialForm.focusNext()
			return m, nil
		}

		recordName := strings.TrimSpace(m.credentialForm.value(0))
		password := m.credentialForm.value(3)
		if recordName == "" || password == "" {
			m.errMsg = "Name and password are required"
			return m, nil
		}

		m.errMsg = ""
		m.busy = true
		return m, m.cmdAddCredential(models.CredentialCreate{
			RecordName: recordName,
			URL:        strings.TrimSpace(m.credentialForm.value(1)),
			Login:      strings.TrimSpace(m.credentialForm.value(2)),
			Password:   password,
		})
	}

	return m, m.credentialForm.update(msg)
}

func (m mainLoopModel) updateApplyForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeBrowse
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.busy {
			return m, nil
		}
		code := strings.ToUpper(strings.TrimSpace(m.applyForm.value(0)))
		if code == "" {
			m.errMsg = "Team code is required"
			return m, nil
		}
		m.errMsg = ""
		m.busy = true
		return m, m.cmdApply(code)
	}

	return m, m.applyForm.update(msg)
}

func (m mainLoopModel) updateTeamForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeBrowse
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.busy {
			return m, nil
		}
		name := strings.TrimSpace(m.teamForm.value(0))
		if name == "" {
			m.errMsg = "Team name is required"
			return m, nil
		}
		m.errMsg = ""
		m.busy = true
		return m, m.cmdCreateTeam(name)
	}

	return m, m.teamForm.update(msg)
}

func (m mainLoopModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.mode {
	case modeNewCredential:
		b.WriteString(m.credentialForm.view())
	case modeApply:
		b.WriteString(m.applyForm.view())
	case modeNewTeam:
		b.WriteString(m.teamForm.view())
	default:
		switch {
		case m.loading:
			b.WriteString("Loading...")
		case m.tab == tabCredentials:
			b.WriteString(m.renderCredentials())
		case m.tab == tabTeams:
			b.WriteString(m.renderTeams())
		default:
			b.WriteString(m.renderApplications())
		}
	}

	if m.mode == modeConfirmDelete {
		if credential, ok := m.selectedCredential(); ok {
			b.WriteString("\n\n")
			b.WriteString(overlayStyle.Render("Delete " + credential.RecordName + "? (y/n)"))
		}
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	title := "TEAM KEEPER │ " + m.session.User.Username
	return renderPage(title, b.String(), m.hotKeys())
}

func (m mainLoopModel) hotKeys() string {
	switch m.mode {
	case modeConfirmDelete:
		return "y: delete │ n: cancel"
	case modeNewCredential:
		return "esc: cancel │ tab: next field │ enter: save"
	case modeApply, modeNewTeam:
		return "esc: cancel │ enter: submit"
	}

	hints := "tab: next tab │ ↑/↓: move │ r: refresh │ n: new credential │ a: apply │ t: new team │ l: log out │ q: quit"
	if m.tab == tabCredentials {
		hints = "c: copy password │ d: delete │ " + hints
	}
	return hints
}

func (m mainLoopModel) renderTabs() string {
	parts := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if tab(i) == m.tab {
			parts[i] = activeTabStyle.Render(title)
		} else {
			parts[i] = tabStyle.Render(title)
		}
	}
	return strings.Join(parts, " │ ")
}

func (m mainLoopModel) renderCredentials() string {
	if len(m.credentials) == 0 {
		return "No credentials yet"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-24s │ %-20s │ %-28s │ %s\n", "Name", "Login", "URL", "Team"))
	b.WriteString("  " + strings.Repeat("─", 24) + "─┼─" + strings.Repeat("─", 20) + "─┼─" + strings.Repeat("─", 28) + "─┼─" + strings.Repeat("─", 12) + "\n")
	for i, c := range m.credentials {
		b.WriteString(fmt.Sprintf("%s %-24s │ %-20s │ %-28s │ %s\n",
			cursor(i == m.idx[tabCredentials]),
			fitText(valueOrDash(c.RecordName), 24),
			fitText(valueOrDash(c.Login), 20),
			fitText(valueOrDash(c.URL), 28),
			m.teamName(c.TeamID),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) renderTeams() string {
	if len(m.teams) == 0 {
		return "You are not in any team"
	}

	var b strings.Builder
	for i, t := range m.teams {
		b.WriteString(fmt.Sprintf("%s %s [%s]\n", cursor(i == m.idx[tabTeams]), t.Name, t.Code))
		if len(t.Admins) > 0 {
			b.WriteString("    admins: " + joinUsers(t.Admins) + "\n")
		}
		if len(t.Members) > 0 {
			b.WriteString("    members: " + joinUsers(t.Members) + "\n")
		}
		if len(t.Awaiting) > 0 {
			b.WriteString("    awaiting: " + joinUsers(t.Awaiting) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) renderApplications() string {
	if len(m.applications) == 0 {
		return "No pending applications"
	}

	var b strings.Builder
	for i, a := range m.applications {
		b.WriteString(fmt.Sprintf("%s %s [%s] since %s\n",
			cursor(i == m.idx[tabApplications]), a.TeamName, a.TeamCode, valueOrDash(a.ApplicationDate)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) teamName(teamID *int64) string {
	if teamID == nil {
		return "personal"
	}
	for _, t := range m.teams {
		if t.TeamID == *teamID {
			return t.Name
		}
	}
	return fmt.Sprintf("team #%d", *teamID)
}

func (m mainLoopModel) rowCount() int {
	switch m.tab {
	case tabCredentials:
		return len(m.credentials)
	case tabTeams:
		return len(m.teams)
	default:
		return len(m.applications)
	}
}

func (m *mainLoopModel) clampCursors() {
	counts := [3]int{len(m.credentials), len(m.teams), len(m.applications)}
	for i, n := range counts {
		if m.idx[i] >= n {
			m.idx[i] = max(n-1, 0)
		}
	}
}

func (m mainLoopModel) selectedCredential() (models.CredentialPublic, bool) {
	if m.tab != tabCredentials || m.loading || len(m.credentials) == 0 {
		return models.CredentialPublic{}, false
	}
	return m.credentials[m.idx[tabCredentials]], true
}

func (m mainLoopModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()

		credentials, err := serverAdapter.Credentials(ctx)
		if err != nil {
			return dataLoadedMsg{err: fmt.Errorf("load credentials: %w", err)}
		}
		teams, err := serverAdapter.Teams(ctx)
		if err != nil {
			return dataLoadedMsg{err: fmt.Errorf("load teams: %w", err)}
		}
		applications, err := serverAdapter.Applications(ctx)
		if err != nil {
			return dataLoadedMsg{err: fmt.Errorf("load applications: %w", err)}
		}

		return dataLoadedMsg{credentials: credentials, teams: teams, applications: applications}
	}
}

func (m mainLoopModel) cmdCopy(credential models.CredentialPublic) tea.Cmd {
	keyChain := m.keys
	session := m.session

	return func() tea.Msg {
		password, err := keyChain.Open(credential.Password, session.User.PublicKey, session.PrivateKey)
		if err != nil {
			return copiedMsg{recordName: credential.RecordName, err: err}
		}
		return copiedMsg{recordName: credential.RecordName, err: writeClipboard(password)}
	}
}

func (m mainLoopModel) cmdAddCredential(req models.CredentialCreate) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	keyChain := m.keys
	publicKey := m.session.User.PublicKey

	return func() tea.Msg {
		sealed, err := keyChain.Seal(publicKey, req.Password)
		if err != nil {
			return credentialSavedMsg{err: fmt.Errorf("encrypt password: %w", err)}
		}
		req.Password = sealed

		ctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()

		credential, err := serverAdapter.AddCredential(ctx, req)
		return credentialSavedMsg{credential: credential, err: err}
	}
}

func (m mainLoopModel) cmdDelete(credentialID int64) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()

		return credentialDeletedMsg{err: serverAdapter.DeleteCredential(ctx, credentialID)}
	}
}

func (m mainLoopModel) cmdCreateTeam(name string) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()

		team, err := serverAdapter.CreateTeam(ctx, name)
		return teamCreatedMsg{team: team, err: err}
	}
}

func (m mainLoopModel) cmdApply(code string) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()

		return appliedMsg{code: code, err: serverAdapter.ApplyToTeam(ctx, code)}
	}
}

func credentialErrorMessage(err error) string {
	switch {
	case errors.Is(err, adapter.ErrForbidden):
		return "Not permitted"
	case errors.Is(err, adapter.ErrNotFound):
		return "Credential no longer exists"
	case errors.Is(err, adapter.ErrConflict):
		return "A credential with this group already exists"
	}
	return humanizeServerUnavailableError(err)
}

func teamErrorMessage(err error) string {
	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return "No team with this code"
	case errors.Is(err, adapter.ErrConflict):
		return "You are already related to this team"
	}
	return humanizeServerUnavailableError(err)
}

func cursor(selected bool) string {
	if selected {
		return ">"
	}
	return " "
}

func joinUsers(users []models.TeamUser) string {
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Username
	}
	return strings.Join(names, ", ")
}
