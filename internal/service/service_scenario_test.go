package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-team-keeper/internal/config"
	"github.com/MKhiriev/go-team-keeper/internal/crypto"
	"github.com/MKhiriev/go-team-keeper/internal/logger"
	"github.com/MKhiriev/go-team-keeper/internal/store"
	"github.com/MKhiriev/go-team-keeper/models"
)

// vault is a credential and team service pair over a migrated in-memory
// SQLite database.
type vault struct {
	storages    *store.Storages
	credentials CredentialService
	teams       TeamService
}

func newVault(t *testing.T) *vault {
	t.Helper()

	db, err := store.NewDB(context.Background(), config.DB{Driver: config.DriverSQLite, DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	storages := store.NewStorages(db)
	return &vault{
		storages:    storages,
		credentials: NewCredentialValidationService().Wrap(NewCredentialService(storages, logger.Nop())),
		teams:       NewTeamValidationService().Wrap(NewTeamService(storages, crypto.NewTeamCodeGenerator(), logger.Nop())),
	}
}

func (v *vault) user(t *testing.T, name string) models.User {
	t.Helper()
	u, err := v.storages.Users.CreateUser(context.Background(), models.User{Username: name, PasswordHash: "h"})
	require.NoError(t, err)
	return u
}

// team creates a team administered by admin with member as a plain member.
func (v *vault) team(t *testing.T, admin, member models.User) models.Team {
	t.Helper()
	ctx := context.Background()

	team, err := v.teams.AddTeam(ctx, admin, models.CreateTeamRequest{Name: "ops"})
	require.NoError(t, err)

	_, err = v.teams.ApplyToTeam(ctx, member, strings.ToLower(team.Code))
	require.NoError(t, err)

	err = v.teams.RespondToApplication(ctx, admin, team.TeamID, member.UserID, models.ApplicationAction{Action: models.ActionAccept})
	require.NoError(t, err)

	return team
}

func (v *vault) role(t *testing.T, teamID, userID int64) models.Role {
	t.Helper()
	m, err := v.storages.Memberships.FindMembership(context.Background(), teamID, userID)
	if err != nil {
		require.ErrorIs(t, err, store.ErrMembershipNotFound)
		return ""
	}
	return m.Role
}

func TestScenario_ApplyAcceptQuitPurges(t *testing.T) {
	v := newVault(t)
	ctx := context.Background()
	admin, bob := v.user(t, "admin"), v.user(t, "bob")

	team, err := v.teams.AddTeam(ctx, admin, models.CreateTeamRequest{Name: "ops"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, v.role(t, team.TeamID, admin.UserID))

	_, err = v.teams.ApplyToTeam(ctx, bob, team.Code)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAwaiting, v.role(t, team.TeamID, bob.UserID))

	mine, err := v.teams.GetMyApplications(ctx, bob)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, team.TeamID, mine[0].TeamID)

	applications, err := v.teams.GetTeamApplications(ctx, admin, team.TeamID)
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, models.ApplicationID(team.TeamID, bob.UserID), applications[0].ApplicationID)

	err = v.teams.RespondToApplication(ctx, admin, team.TeamID, bob.UserID, models.ApplicationAction{Action: models.ActionAccept})
	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, v.role(t, team.TeamID, bob.UserID))

	shared, err := v.credentials.AddCredential(ctx, admin, models.CredentialCreate{
		Login: "root", RecordName: "db", Group: "db", TeamID: &team.TeamID, Password: "for-bob", UserID: &bob.UserID,
	})
	require.NoError(t, err)

	require.NoError(t, v.teams.QuitTeam(ctx, bob, team.TeamID))
	assert.Equal(t, models.Role(""), v.role(t, team.TeamID, bob.UserID))

	left, err := v.credentials.GetMine(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, left)

	_, err = v.storages.Credentials.FindCredentialByID(ctx, shared.CredentialID)
	require.ErrorIs(t, err, store.ErrCredentialNotFound, "credential without secrets is collected")
}

func TestScenario_SharedGroupHoldsOneCredential(t *testing.T) {
	v := newVault(t)
	ctx := context.Background()
	alice, bob := v.user(t, "alice"), v.user(t, "bob")

	first, err := v.credentials.AddCredential(ctx, alice, models.CredentialCreate{
		Login: "a@gmail.com", RecordName: "mail", Group: "gmail", Password: "p1",
	})
	require.NoError(t, err)

	second, err := v.credentials.AddCredential(ctx, alice, models.CredentialCreate{
		Login: "ignored", Group: "gmail", Password: "p2", UserID: &bob.UserID,
	})
	require.NoError(t, err)
	assert.Equal(t, first.CredentialID, second.CredentialID)

	aliceItems, err := v.credentials.GetMine(ctx, alice)
	require.NoError(t, err)
	bobItems, err := v.credentials.GetMine(ctx, bob)
	require.NoError(t, err)

	require.Len(t, aliceItems, 1)
	require.Len(t, bobItems, 1)
	assert.Equal(t, "p1", aliceItems[0].Password)
	assert.Equal(t, "p2", bobItems[0].Password)
	assert.Equal(t, "a@gmail.com", bobItems[0].Login)

	_, err = v.credentials.AddCredential(ctx, alice, models.CredentialCreate{Group: "gmail", Password: "again"})
	require.ErrorIs(t, err, ErrSecretExists)

	// deleting a non-last secret keeps the credential
	require.NoError(t, v.credentials.DeleteOne(ctx, alice, first.CredentialID))
	_, err = v.storages.Credentials.FindCredentialByID(ctx, first.CredentialID)
	require.NoError(t, err)

	// deleting the last one collects it
	require.NoError(t, v.credentials.DeleteOne(ctx, bob, first.CredentialID))
	_, err = v.storages.Credentials.FindCredentialByID(ctx, first.CredentialID)
	require.ErrorIs(t, err, store.ErrCredentialNotFound)
}

func TestScenario_NonAdminGroupUpdateChangesNothing(t *testing.T) {
	v := newVault(t)
	ctx := context.Background()
	admin, bob := v.user(t, "admin"), v.user(t, "bob")
	team := v.team(t, admin, bob)

	_, err := v.credentials.AddCredential(ctx, admin, models.CredentialCreate{
		Login: "root", Group: "db", TeamID: &team.TeamID, Password: "p", UserID: &bob.UserID,
	})
	require.NoError(t, err)

	_, err = v.credentials.UpdateGroup(ctx, bob, "db", models.CredentialUpdate{
		Login: strPtr("hacked"), Password: strPtr("hacked"), UserID: &bob.UserID,
	})
	require.ErrorIs(t, err, ErrNotPermitted)
	assert.ErrorIs(t, err, ErrForbidden)

	items, err := v.credentials.GetMine(ctx, bob)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "root", items[0].Login)
	assert.Equal(t, "p", items[0].Password)

	updated, err := v.credentials.UpdateGroup(ctx, admin, "db", models.CredentialUpdate{
		Password: strPtr("rotated"), UserID: &bob.UserID,
	})
	require.NoError(t, err)
	assert.Equal(t, "rotated", updated.Password)
	assert.Equal(t, bob.UserID, updated.UserID)
}

func TestScenario_MemberCannotAddTeamCredential(t *testing.T) {
	v := newVault(t)
	ctx := context.Background()
	admin, bob := v.user(t, "admin"), v.user(t, "bob")
	team := v.team(t, admin, bob)

	_, err := v.credentials.AddCredential(ctx, bob, models.CredentialCreate{Login: "x", TeamID: &team.TeamID, Password: "p"})
	require.ErrorIs(t, err, ErrForbidden)

	_, err = v.credentials.AddCredential(ctx, bob, models.CredentialCreate{Login: "x", Password: "p"})
	require.NoError(t, err)
}

func TestScenario_RemoveMemberPurgesOnlyThatTeam(t *testing.T) {
	v := newVault(t)
	ctx := context.Background()
	admin, bob := v.user(t, "admin"), v.user(t, "bob")
	team := v.team(t, admin, bob)

	_, err := v.credentials.AddCredential(ctx, admin, models.CredentialCreate{
		Login: "root", Group: "db", TeamID: &team.TeamID, Password: "admin-p",
	})
	require.NoError(t, err)
	_, err = v.credentials.AddCredential(ctx, admin, models.CredentialCreate{
		Group: "db", Password: "bob-p", UserID: &bob.UserID,
	})
	require.NoError(t, err)
	_, err = v.credentials.AddCredential(ctx, bob, models.CredentialCreate{Login: "own", Password: "mine"})
	require.NoError(t, err)

	// admins cannot be removed as members
	err = v.teams.RemoveTeamMember(ctx, admin, team.TeamID, admin.UserID)
	require.ErrorIs(t, err, ErrMemberNotFound)

	require.NoError(t, v.teams.RemoveTeamMember(ctx, admin, team.TeamID, bob.UserID))

	items, err := v.credentials.GetMine(ctx, bob)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "own", items[0].Login)

	adminItems, err := v.credentials.GetMine(ctx, admin)
	require.NoError(t, err)
	require.Len(t, adminItems, 1, "the shared credential still has the admin's secret")
}

func TestScenario_OneRolePerTeam(t *testing.T) {
	v := newVault(t)
	ctx := context.Background()
	admin, bob := v.user(t, "admin"), v.user(t, "bob")
	team := v.team(t, admin, bob)

	_, err := v.teams.ApplyToTeam(ctx, bob, team.Code)
	require.ErrorIs(t, err, ErrAlreadyMember)

	_, err = v.teams.ApplyToTeam(ctx, admin, team.Code)
	require.ErrorIs(t, err, ErrAlreadyMember)

	teams, err := v.teams.GetMyTeams(ctx, bob)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Empty(t, teams[0].Members, "members are listed to admins only")
	assert.Len(t, teams[0].Admins, 1)

	adminTeams, err := v.teams.GetMyTeams(ctx, admin)
	require.NoError(t, err)
	require.Len(t, adminTeams, 1)
	assert.Len(t, adminTeams[0].Members, 1)
}

func TestScenario_MemberJoinsTeamGroupWithoutTeamID(t *testing.T) {
	v := newVault(t)
	ctx := context.Background()
	admin, bob := v.user(t, "admin"), v.user(t, "bob")
	team := v.team(t, admin, bob)

	shared, err := v.credentials.AddCredential(ctx, admin, models.CredentialCreate{
		Login: "root", Group: "db", TeamID: &team.TeamID, Password: "admin-p",
	})
	require.NoError(t, err)

	got, err := v.credentials.AddCredential(ctx, bob, models.CredentialCreate{Group: "db", Password: "bob-p"})
	require.NoError(t, err)
	assert.Equal(t, shared.CredentialID, got.CredentialID)
	assert.Equal(t, &team.TeamID, got.TeamID)
	assert.Equal(t, "root", got.Login)
	assert.Equal(t, "bob-p", got.Password)

	// naming the team still needs admin rights
	_, err = v.credentials.AddCredential(ctx, bob, models.CredentialCreate{Group: "db", TeamID: &team.TeamID, Password: "x"})
	require.ErrorIs(t, err, ErrNotPermitted)
}

func TestScenario_FailedBatchRollsBack(t *testing.T) {
	v := newVault(t)
	ctx := context.Background()
	alice, bob := v.user(t, "alice"), v.user(t, "bob")

	own, err := v.credentials.AddCredential(ctx, alice, models.CredentialCreate{Login: "a", Password: "old"})
	require.NoError(t, err)
	foreign, err := v.credentials.AddCredential(ctx, bob, models.CredentialCreate{Login: "b", Password: "bob"})
	require.NoError(t, err)

	_, err = v.credentials.UpdateBatch(ctx, alice, []models.CredentialUpdate{
		{CredentialID: &own.CredentialID, Login: strPtr("renamed"), Password: strPtr("new")},
		{CredentialID: &foreign.CredentialID, Password: strPtr("stolen")},
	})
	require.ErrorIs(t, err, ErrNotPermitted)

	after, err := v.credentials.GetByID(ctx, alice, own.CredentialID)
	require.NoError(t, err)
	assert.Equal(t, "old", after.Password)
	assert.Equal(t, "a", after.Login)

	theirs, err := v.credentials.GetByID(ctx, bob, foreign.CredentialID)
	require.NoError(t, err)
	assert.Equal(t, "bob", theirs.Password)
}

func TestScenario_RespondToApplicationCheckOrder(t *testing.T) {
	v := newVault(t)
	ctx := context.Background()
	admin, bob, carol := v.user(t, "admin"), v.user(t, "bob"), v.user(t, "carol")
	team := v.team(t, admin, bob)
	accept := models.ApplicationAction{Action: models.ActionAccept}

	// the action is validated before anything is looked up
	err := v.teams.RespondToApplication(ctx, bob, team.TeamID+100, carol.UserID, models.ApplicationAction{Action: "maybe"})
	require.ErrorIs(t, err, ErrInvalid)

	// a missing team is reported before the caller's rights
	err = v.teams.RespondToApplication(ctx, bob, team.TeamID+100, carol.UserID, accept)
	require.ErrorIs(t, err, ErrTeamNotFound)

	// rights are checked before the application
	err = v.teams.RespondToApplication(ctx, bob, team.TeamID, carol.UserID, accept)
	require.ErrorIs(t, err, ErrNotPermitted)

	err = v.teams.RespondToApplication(ctx, admin, team.TeamID, carol.UserID, accept)
	require.ErrorIs(t, err, ErrApplicationNotFound)
}
