package service

import (
	"context"

	"github.com/MKhiriev/go-team-keeper/models"
)

// AuthService registers users, checks their passwords and issues and
// resolves session tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.UserPublic, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate parses tokenString and loads the user it was issued to.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// UserService exposes user profiles and lets users rotate their password
// and key pair.
type UserService interface {
	GetMe(ctx context.Context, user models.User) (models.UserPublic, error)
	GetUserByID(ctx context.Context, userID int64) (models.UserPublic, error)
	GetAllUsers(ctx context.Context) ([]models.UserPublic, error)
	ChangePassword(ctx context.Context, user models.User, req models.ChangePasswordRequest) error
	ChangeKeys(ctx context.Context, user models.User, req models.ChangeKeysRequest) (models.UserPublic, error)
}

// CredentialService authorizes and performs credential operations on
// behalf of an authenticated user.
type CredentialService interface {
	// CanAdd fails with ErrNotPermitted unless teamID is unset or the user
	// administers that team.
	CanAdd(ctx context.Context, user models.User, teamID *int64) error
	// CanDeleteOwn returns the credential iff the user holds a secret on it.
	CanDeleteOwn(ctx context.Context, user models.User, credentialID int64) (models.Credential, error)
	// CanAdminGroup returns the team credential using group iff the user
	// administers its team.
	CanAdminGroup(ctx context.Context, user models.User, group string) (models.Credential, error)

	AddCredential(ctx context.Context, user models.User, data models.CredentialCreate) (models.CredentialPublic, error)
	GetByID(ctx context.Context, user models.User, credentialID int64) (models.CredentialPublic, error)
	GetByGroup(ctx context.Context, user models.User, group string) ([]models.CredentialPublic, error)
	GetMine(ctx context.Context, user models.User) ([]models.CredentialPublic, error)
	UpdateOne(ctx context.Context, user models.User, credentialID int64, patch models.CredentialUpdate) (models.CredentialPublic, error)
	UpdateGroup(ctx context.Context, user models.User, group string, patch models.CredentialUpdate) (models.CredentialPublic, error)
	UpdateBatch(ctx context.Context, user models.User, patches []models.CredentialUpdate) ([]models.CredentialPublic, error)
	DeleteOne(ctx context.Context, user models.User, credentialID int64) error
	DeleteGroup(ctx context.Context, user models.User, group string) error

	// PurgeCredentials deletes every secret of userID on credentials of
	// teamID together with the credentials left without secrets.
	PurgeCredentials(ctx context.Context, userID, teamID int64) error
}

// TeamService manages teams, applications and memberships.
type TeamService interface {
	AddTeam(ctx context.Context, user models.User, req models.CreateTeamRequest) (models.Team, error)
	ApplyToTeam(ctx context.Context, user models.User, code string) (models.MyApplication, error)
	RespondToApplication(ctx context.Context, actor models.User, teamID, userID int64, action models.ApplicationAction) error
	QuitTeam(ctx context.Context, user models.User, teamID int64) error
	RemoveTeamMember(ctx context.Context, actor models.User, teamID, userID int64) error

	GetMyTeams(ctx context.Context, user models.User) ([]models.TeamDetailed, error)
	GetMyApplications(ctx context.Context, user models.User) ([]models.MyApplication, error)
	GetTeamApplications(ctx context.Context, user models.User, teamID int64) ([]models.TeamApplication, error)
	GetTeamByID(ctx context.Context, user models.User, teamID int64) (models.TeamDetailed, error)
}

// AppInfoService reports build information and whether the service can
// serve requests.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string

	// CheckStorage returns an error when the database is unreachable.
	CheckStorage(ctx context.Context) error
}

// CredentialServiceWrapper decorates a CredentialService, e.g. with
// request validation.
type CredentialServiceWrapper interface {
	Wrap(CredentialService) CredentialService
}

// TeamServiceWrapper decorates a TeamService.
type TeamServiceWrapper interface {
	Wrap(TeamService) TeamService
}
