package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-team-keeper/internal/adapter"
	"github.com/MKhiriev/go-team-keeper/internal/logger"
	"github.com/MKhiriev/go-team-keeper/internal/tui"
)

type App struct {
	adapter adapter.ServerAdapter
	ui      UI
	logger  *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, ui UI, log *logger.Logger) (*App, error) {
	if serverAdapter == nil || ui == nil {
		return nil, errors.New("client app needs a server adapter and a ui")
	}

	return &App{
		adapter: serverAdapter,
		ui:      ui,
		logger:  log,
	}, nil
}

// Run alternates between the login flow and the main loop until the user
// quits. Logging out drops the session token and the unlocked key.
func (a *App) Run(ctx context.Context) error {
	for {
		session, err := a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}

		logout, err := a.ui.MainLoop(ctx, session)

		session.Wipe()
		a.adapter.SetToken("")

		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.logger.Info().
			Str("func", "*App.Run").
			Int64("user_id", session.User.UserID).
			Msg("user logged out")
	}
}
