package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-team-keeper/internal/store"
	"github.com/MKhiriev/go-team-keeper/models"
)

var alice = models.User{UserID: 1, Username: "alice"}

func TestCredentialService_CanAdd(t *testing.T) {
	tests := []struct {
		name    string
		teamID  *int64
		setup   func(m *repoMocks)
		wantErr error
	}{
		{name: "private credential", teamID: nil},
		{name: "zero team is private", teamID: int64Ptr(0)},
		{
			name:   "team admin",
			teamID: int64Ptr(7),
			setup: func(m *repoMocks) {
				m.memberships.EXPECT().FindMembership(gomock.Any(), int64(7), alice.UserID).
					Return(models.Membership{TeamID: 7, UserID: 1, Role: models.RoleAdmin}, nil)
			},
		},
		{
			name:   "team member",
			teamID: int64Ptr(7),
			setup: func(m *repoMocks) {
				m.memberships.EXPECT().FindMembership(gomock.Any(), int64(7), alice.UserID).
					Return(models.Membership{TeamID: 7, UserID: 1, Role: models.RoleMember}, nil)
			},
			wantErr: ErrNotPermitted,
		},
		{
			name:   "stranger",
			teamID: int64Ptr(7),
			setup: func(m *repoMocks) {
				m.memberships.EXPECT().FindMembership(gomock.Any(), int64(7), alice.UserID).
					Return(models.Membership{}, store.ErrMembershipNotFound)
			},
			wantErr: ErrNotPermitted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, svc := newMockCredentialService(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			err := svc.CanAdd(context.Background(), alice, tt.teamID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrForbidden)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCredentialService_AddCredential_JoinsExistingGroup(t *testing.T) {
	m, svc := newMockCredentialService(t)
	ctx := context.Background()

	existing := models.Credential{CredentialID: 3, Login: "a@gmail.com", Group: "gmail"}
	m.credentials.EXPECT().FindCredentialByGroup(gomock.Any(), "gmail").Return(existing, nil)
	m.secrets.EXPECT().CreateSecret(gomock.Any(), models.CredentialSecret{CredentialID: 3, UserID: 9, Password: "p2"}).
		Return(models.CredentialSecret{SecretID: 11, CredentialID: 3, UserID: 9, Password: "p2"}, nil)

	got, err := svc.AddCredential(ctx, alice, models.CredentialCreate{
		Login: "ignored", Group: "gmail", Password: "p2", UserID: int64Ptr(9),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), got.CredentialID)
	assert.Equal(t, "a@gmail.com", got.Login, "existing metadata wins")
	assert.Equal(t, int64(9), got.UserID)
	assert.Equal(t, "p2", got.Password)
}

func TestCredentialService_AddCredential_RetriesGroupRace(t *testing.T) {
	m, svc := newMockCredentialService(t)
	ctx := context.Background()

	winner := models.Credential{CredentialID: 5, Group: "vpn"}
	gomock.InOrder(
		m.credentials.EXPECT().FindCredentialByGroup(gomock.Any(), "vpn").Return(models.Credential{}, store.ErrCredentialNotFound),
		m.credentials.EXPECT().CreateCredential(gomock.Any(), gomock.Any()).Return(models.Credential{}, store.ErrCredentialGroupExists),
		m.credentials.EXPECT().FindCredentialByGroup(gomock.Any(), "vpn").Return(winner, nil),
		m.secrets.EXPECT().CreateSecret(gomock.Any(), gomock.Any()).
			Return(models.CredentialSecret{SecretID: 1, CredentialID: 5, UserID: alice.UserID, Password: "p"}, nil),
	)

	got, err := svc.AddCredential(ctx, alice, models.CredentialCreate{Group: "vpn", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.CredentialID)
	assert.Equal(t, alice.UserID, got.UserID)
}

func TestCredentialService_AddCredential_GroupBusy(t *testing.T) {
	m, svc := newMockCredentialService(t)

	m.credentials.EXPECT().FindCredentialByGroup(gomock.Any(), "vpn").
		Return(models.Credential{}, store.ErrCredentialNotFound).Times(maxGroupAttempts)
	m.credentials.EXPECT().CreateCredential(gomock.Any(), gomock.Any()).
		Return(models.Credential{}, store.ErrCredentialGroupExists).Times(maxGroupAttempts)

	_, err := svc.AddCredential(context.Background(), alice, models.CredentialCreate{Group: "vpn", Password: "p"})
	require.ErrorIs(t, err, ErrGroupBusy)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCredentialService_AddCredential_StoreErrors(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		wantErr  error
	}{
		{name: "secret exists", storeErr: store.ErrSecretAlreadyExists, wantErr: ErrSecretExists},
		{name: "unknown owner", storeErr: store.ErrNoUserWasFound, wantErr: ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, svc := newMockCredentialService(t)

			m.credentials.EXPECT().FindCredentialByGroup(gomock.Any(), "").Return(models.Credential{}, store.ErrCredentialNotFound)
			m.credentials.EXPECT().CreateCredential(gomock.Any(), gomock.Any()).Return(models.Credential{CredentialID: 2}, nil)
			m.secrets.EXPECT().CreateSecret(gomock.Any(), gomock.Any()).Return(models.CredentialSecret{}, tt.storeErr)

			_, err := svc.AddCredential(context.Background(), alice, models.CredentialCreate{Login: "l", Password: "p"})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCredentialService_AddCredential_ExistingTeamGroupWithoutTeamID(t *testing.T) {
	m, svc := newMockCredentialService(t)

	// only the team named in the request is checked; joining an existing
	// team group without one needs no membership lookup
	m.credentials.EXPECT().FindCredentialByGroup(gomock.Any(), "db").
		Return(models.Credential{CredentialID: 4, Group: "db", TeamID: int64Ptr(2)}, nil)
	m.secrets.EXPECT().CreateSecret(gomock.Any(), models.CredentialSecret{CredentialID: 4, UserID: alice.UserID, Password: "p"}).
		Return(models.CredentialSecret{SecretID: 8, CredentialID: 4, UserID: alice.UserID, Password: "p"}, nil)

	got, err := svc.AddCredential(context.Background(), alice, models.CredentialCreate{Group: "db", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.CredentialID)
	assert.Equal(t, int64Ptr(2), got.TeamID)
}

func TestCredentialService_CanDeleteOwn_MissingCredentialIsForbidden(t *testing.T) {
	m, svc := newMockCredentialService(t)

	m.credentials.EXPECT().FindCredentialByID(gomock.Any(), int64(42)).Return(models.Credential{}, store.ErrCredentialNotFound)

	_, err := svc.CanDeleteOwn(context.Background(), alice, 42)
	require.ErrorIs(t, err, ErrNotPermitted)
}

func TestCredentialService_CanAdminGroup(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m *repoMocks)
		wantErr error
	}{
		{
			name: "unknown group",
			setup: func(m *repoMocks) {
				m.credentials.EXPECT().FindCredentialByGroup(gomock.Any(), "g").Return(models.Credential{}, store.ErrCredentialNotFound)
			},
			wantErr: ErrGroupNotFound,
		},
		{
			name: "private credential",
			setup: func(m *repoMocks) {
				m.credentials.EXPECT().FindCredentialByGroup(gomock.Any(), "g").Return(models.Credential{CredentialID: 1, Group: "g"}, nil)
			},
			wantErr: ErrCredentialNotShared,
		},
		{
			name: "not an admin",
			setup: func(m *repoMocks) {
				m.credentials.EXPECT().FindCredentialByGroup(gomock.Any(), "g").
					Return(models.Credential{CredentialID: 1, Group: "g", TeamID: int64Ptr(3)}, nil)
				m.memberships.EXPECT().FindMembership(gomock.Any(), int64(3), alice.UserID).
					Return(models.Membership{Role: models.RoleAwaiting}, nil)
			},
			wantErr: ErrNotPermitted,
		},
		{
			name: "admin",
			setup: func(m *repoMocks) {
				m.credentials.EXPECT().FindCredentialByGroup(gomock.Any(), "g").
					Return(models.Credential{CredentialID: 1, Group: "g", TeamID: int64Ptr(3)}, nil)
				m.memberships.EXPECT().FindMembership(gomock.Any(), int64(3), alice.UserID).
					Return(models.Membership{Role: models.RoleAdmin}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, svc := newMockCredentialService(t)
			tt.setup(m)

			credential, err := svc.CanAdminGroup(context.Background(), alice, "g")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), credential.CredentialID)
		})
	}
}

func TestCredentialService_GetByGroup_NoSecretIsEmpty(t *testing.T) {
	m, svc := newMockCredentialService(t)

	m.credentials.EXPECT().FindCredentialByGroup(gomock.Any(), "g").
		Return(models.Credential{CredentialID: 1, Group: "g", TeamID: int64Ptr(3)}, nil)
	m.memberships.EXPECT().FindMembership(gomock.Any(), int64(3), alice.UserID).Return(models.Membership{Role: models.RoleAdmin}, nil)
	m.secrets.EXPECT().FindSecret(gomock.Any(), int64(1), alice.UserID).Return(models.CredentialSecret{}, store.ErrSecretNotFound)

	got, err := svc.GetByGroup(context.Background(), alice, "g")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCredentialService_UpdateGroup_RequiresUserID(t *testing.T) {
	_, svc := newMockCredentialService(t)

	_, err := svc.UpdateGroup(context.Background(), alice, "g", models.CredentialUpdate{Password: strPtr("x")})
	require.ErrorIs(t, err, ErrGroupUserRequired)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCredentialService_UpdateOne(t *testing.T) {
	m, svc := newMockCredentialService(t)
	ctx := context.Background()

	m.credentials.EXPECT().FindCredentialByID(gomock.Any(), int64(8)).
		Return(models.Credential{CredentialID: 8, Login: "old", RecordName: "r"}, nil)
	m.secrets.EXPECT().FindSecret(gomock.Any(), int64(8), alice.UserID).
		Return(models.CredentialSecret{SecretID: 20, CredentialID: 8, UserID: 1, Password: "p"}, nil)
	m.credentials.EXPECT().UpdateCredential(gomock.Any(), models.Credential{CredentialID: 8, Login: "new", RecordName: "r"}).Return(nil)
	m.secrets.EXPECT().UpdateSecretPassword(gomock.Any(), int64(20), "p2").Return(nil)

	got, err := svc.UpdateOne(ctx, alice, 8, models.CredentialUpdate{Login: strPtr("new"), Password: strPtr("p2")})
	require.NoError(t, err)
	assert.Equal(t, "new", got.Login)
	assert.Equal(t, "p2", got.Password)
}

func TestCredentialService_UpdateOne_PasswordOnlyLeavesCredential(t *testing.T) {
	m, svc := newMockCredentialService(t)

	m.credentials.EXPECT().FindCredentialByID(gomock.Any(), int64(8)).Return(models.Credential{CredentialID: 8}, nil)
	m.secrets.EXPECT().FindSecret(gomock.Any(), int64(8), alice.UserID).Return(models.CredentialSecret{SecretID: 20}, nil)
	m.secrets.EXPECT().UpdateSecretPassword(gomock.Any(), int64(20), "p2").Return(nil)

	_, err := svc.UpdateOne(context.Background(), alice, 8, models.CredentialUpdate{Password: strPtr("p2")})
	require.NoError(t, err)
}

func TestCredentialService_UpdateOne_GroupTaken(t *testing.T) {
	m, svc := newMockCredentialService(t)

	m.credentials.EXPECT().FindCredentialByID(gomock.Any(), int64(8)).Return(models.Credential{CredentialID: 8}, nil)
	m.secrets.EXPECT().FindSecret(gomock.Any(), int64(8), alice.UserID).Return(models.CredentialSecret{SecretID: 20}, nil)
	m.credentials.EXPECT().UpdateCredential(gomock.Any(), gomock.Any()).Return(store.ErrCredentialGroupExists)

	_, err := svc.UpdateOne(context.Background(), alice, 8, models.CredentialUpdate{Group: strPtr("taken")})
	require.ErrorIs(t, err, ErrGroupTaken)
}

func TestCredentialService_UpdateBatch_StopsOnFirstFailure(t *testing.T) {
	m, svc := newMockCredentialService(t)

	m.credentials.EXPECT().FindCredentialByID(gomock.Any(), int64(1)).Return(models.Credential{CredentialID: 1}, nil)
	m.secrets.EXPECT().FindSecret(gomock.Any(), int64(1), alice.UserID).Return(models.CredentialSecret{SecretID: 10}, nil)
	m.secrets.EXPECT().UpdateSecretPassword(gomock.Any(), int64(10), "a").Return(nil)
	m.credentials.EXPECT().FindCredentialByID(gomock.Any(), int64(2)).Return(models.Credential{CredentialID: 2}, nil)
	m.secrets.EXPECT().FindSecret(gomock.Any(), int64(2), alice.UserID).Return(models.CredentialSecret{}, store.ErrSecretNotFound)

	got, err := svc.UpdateBatch(context.Background(), alice, []models.CredentialUpdate{
		{CredentialID: int64Ptr(1), Password: strPtr("a")},
		{Password: strPtr("skipped")},
		{CredentialID: int64Ptr(2), Password: strPtr("b")},
		{CredentialID: int64Ptr(3), Password: strPtr("never")},
	})
	require.ErrorIs(t, err, ErrNotPermitted)
	assert.Nil(t, got)
}

func TestCredentialService_DeleteOne_CollectsOrphan(t *testing.T) {
	m, svc := newMockCredentialService(t)

	m.credentials.EXPECT().FindCredentialByID(gomock.Any(), int64(8)).Return(models.Credential{CredentialID: 8}, nil)
	m.secrets.EXPECT().FindSecret(gomock.Any(), int64(8), alice.UserID).Return(models.CredentialSecret{SecretID: 20, CredentialID: 8}, nil)
	gomock.InOrder(
		m.secrets.EXPECT().DeleteSecret(gomock.Any(), int64(20)).Return(nil),
		m.credentials.EXPECT().DeleteCredentialIfOrphaned(gomock.Any(), int64(8)).Return(true, nil),
	)

	require.NoError(t, svc.DeleteOne(context.Background(), alice, 8))
}

func TestCredentialService_DeleteGroup(t *testing.T) {
	m, svc := newMockCredentialService(t)

	m.credentials.EXPECT().FindCredentialByGroup(gomock.Any(), "g").
		Return(models.Credential{CredentialID: 1, Group: "g", TeamID: int64Ptr(3)}, nil)
	m.memberships.EXPECT().FindMembership(gomock.Any(), int64(3), alice.UserID).Return(models.Membership{Role: models.RoleAdmin}, nil)
	m.secrets.EXPECT().DeleteCredentialSecrets(gomock.Any(), int64(1)).Return(int64(4), nil)
	m.credentials.EXPECT().DeleteCredentialIfOrphaned(gomock.Any(), int64(1)).Return(true, nil)

	require.NoError(t, svc.DeleteGroup(context.Background(), alice, "g"))
}

func TestCredentialService_GetMine_PropagatesStoreError(t *testing.T) {
	m, svc := newMockCredentialService(t)
	boom := errors.New("boom")

	m.secrets.EXPECT().ListUserSecrets(gomock.Any(), alice.UserID).Return(nil, boom)

	_, err := svc.GetMine(context.Background(), alice)
	require.ErrorIs(t, err, boom)
}
