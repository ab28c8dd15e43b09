// Package tui is the terminal interface of the team keeper client. It
// runs two Bubble Tea programs: the login flow, ending with an unlocked
// [Session], and the main loop over credentials, teams and applications.
package tui

import (
	"context"

	"github.com/MKhiriev/go-team-keeper/internal/adapter"
	"github.com/MKhiriev/go-team-keeper/internal/crypto"
	"github.com/MKhiriev/go-team-keeper/internal/logger"
	"github.com/MKhiriev/go-team-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	adapter   adapter.ServerAdapter
	keys      crypto.KeyChain
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, keys crypto.KeyChain, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	return &TUI{
		adapter:   serverAdapter,
		keys:      keys,
		buildInfo: buildInfo,
		logger:    log,
	}, nil
}

// LoginFlow shows the start menu until the user logs in. It returns
// [ErrUserQuit] when the user leaves without logging in.
func (t *TUI) LoginFlow(ctx context.Context) (Session, error) {
	root := t.newLoginRoot(ctx)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return Session{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return Session{}, ErrUserQuit
	}

	t.logger.Info().
		Str("func", "*TUI.LoginFlow").
		Int64("user_id", result.session.User.UserID).
		Msg("user logged in")

	return result.session, nil
}

// MainLoop runs the vault screen for session. logout reports whether the
// user asked to log out rather than quit.
func (t *TUI) MainLoop(ctx context.Context, session Session) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.adapter, t.keys, session)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

func (t *TUI) newLoginRoot(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.adapter, t.keys),
		pageRegister: NewRegisterModel(ctx, t.adapter, t.keys),
	}
	return NewRootModel(pages, pageMenu, t.buildInfo, t.serverVersion(ctx))
}

func (t *TUI) serverVersion(ctx context.Context) string {
	version, err := t.adapter.Version(ctx)
	if err != nil {
		t.logger.Warn().Err(err).Str("func", "*TUI.serverVersion").Msg("server version is unavailable")
		return ""
	}
	return version
}
