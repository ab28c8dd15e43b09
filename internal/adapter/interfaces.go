// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the team keeper server.
//
// [ServerAdapter] decouples the terminal UI from the HTTP API. Error values
// defined in errors.go are mapped from HTTP status codes by mapHTTPError so
// that callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-team-keeper/models"
)

// ServerAdapter is the client's view of the server API. Implementations
// keep the session token returned by Login and attach it to every
// authenticated request.
type ServerAdapter interface {
	// SetToken stores the bearer token for subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before Login.
	Token() string

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)

	// Register creates an account. It does not log in.
	Register(ctx context.Context, req models.RegisterRequest) (models.UserPublic, error)

	// Login authenticates and stores the returned session token.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Me returns the private view of the logged-in user.
	Me(ctx context.Context) (models.UserPublic, error)

	// Credentials lists every credential the user holds a secret for.
	Credentials(ctx context.Context) ([]models.CredentialPublic, error)

	// AddCredential stores a credential together with its secret.
	AddCredential(ctx context.Context, req models.CredentialCreate) (models.CredentialPublic, error)

	// DeleteCredential removes the user's secret of a credential.
	DeleteCredential(ctx context.Context, credentialID int64) error

	// Teams lists the teams the user belongs to.
	Teams(ctx context.Context) ([]models.TeamDetailed, error)

	// CreateTeam creates a team administered by the user.
	CreateTeam(ctx context.Context, name string) (models.TeamPublic, error)

	// ApplyToTeam files an application to the team with code.
	ApplyToTeam(ctx context.Context, code string) error

	// Applications lists the user's pending applications.
	Applications(ctx context.Context) ([]models.MyApplication, error)
}
