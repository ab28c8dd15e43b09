package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-team-keeper/models"
)

// Transactor runs fn inside one database transaction. The transaction is
// committed when fn returns nil and rolled back otherwise; repos are bound
// to the transaction and must not be used after fn returns.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUserPassword(ctx context.Context, userID int64, passwordHash, encryptedPrivateKey string) error
	UpdateUserKeys(ctx context.Context, userID int64, publicKey, encryptedPrivateKey string) error
}

type TeamRepository interface {
	CreateTeam(ctx context.Context, team models.Team) (models.Team, error)
	FindTeamByID(ctx context.Context, teamID int64) (models.Team, error)
	FindTeamByCode(ctx context.Context, code string) (models.Team, error)
}

// MembershipRepository manages the single (team, user, role) relation.
// Role filters are optional; without them every role matches.
type MembershipRepository interface {
	AddMembership(ctx context.Context, membership models.Membership) error
	FindMembership(ctx context.Context, teamID, userID int64) (models.Membership, error)
	UpdateRole(ctx context.Context, teamID, userID int64, from, to models.Role) error
	DeleteMembership(ctx context.Context, teamID, userID int64, roles ...models.Role) error
	ListUserTeams(ctx context.Context, userID int64, roles ...models.Role) ([]models.TeamWithRole, error)
	ListTeamUsers(ctx context.Context, teamID int64, roles ...models.Role) ([]models.TeamUser, error)
}

type CredentialRepository interface {
	CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error)
	FindCredentialByID(ctx context.Context, credentialID int64) (models.Credential, error)
	FindCredentialByGroup(ctx context.Context, group string) (models.Credential, error)
	UpdateCredential(ctx context.Context, credential models.Credential) error
	// DeleteCredentialIfOrphaned deletes the credential when no secret
	// references it and reports whether it did.
	DeleteCredentialIfOrphaned(ctx context.Context, credentialID int64) (bool, error)
}

type SecretRepository interface {
	CreateSecret(ctx context.Context, secret models.CredentialSecret) (models.CredentialSecret, error)
	FindSecret(ctx context.Context, credentialID, userID int64) (models.CredentialSecret, error)
	ListUserSecrets(ctx context.Context, userID int64) ([]models.CredentialWithSecret, error)
	ListUserTeamSecrets(ctx context.Context, userID, teamID int64) ([]models.CredentialWithSecret, error)
	UpdateSecretPassword(ctx context.Context, secretID int64, password string) error
	DeleteSecret(ctx context.Context, secretID int64) error
	DeleteCredentialSecrets(ctx context.Context, credentialID int64) (int64, error)
}
