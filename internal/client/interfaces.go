// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-team-keeper/internal/tui"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive part of the client. *tui.TUI implements it.
type UI interface {
	// LoginFlow blocks until the user logs in. It returns tui.ErrUserQuit
	// when the user leaves instead.
	LoginFlow(ctx context.Context) (tui.Session, error)

	// MainLoop blocks until the user quits or logs out.
	MainLoop(ctx context.Context, session tui.Session) (logout bool, err error)
}
