package service

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-team-keeper/internal/logger"
	"github.com/MKhiriev/go-team-keeper/internal/mock"
	"github.com/MKhiriev/go-team-keeper/internal/store"
)

// repoMocks holds the repository mocks behind a Storages value.
type repoMocks struct {
	users       *mock.MockUserRepository
	teams       *mock.MockTeamRepository
	memberships *mock.MockMembershipRepository
	credentials *mock.MockCredentialRepository
	secrets     *mock.MockSecretRepository
}

// passThroughTx runs transactional work directly on the mocked
// repositories.
type passThroughTx struct {
	repos store.Repositories
}

func (tx passThroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context, repos store.Repositories) error) error {
	return fn(ctx, tx.repos)
}

func newMockStorages(t *testing.T) (*repoMocks, *store.Storages) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &repoMocks{
		users:       mock.NewMockUserRepository(ctrl),
		teams:       mock.NewMockTeamRepository(ctrl),
		memberships: mock.NewMockMembershipRepository(ctrl),
		credentials: mock.NewMockCredentialRepository(ctrl),
		secrets:     mock.NewMockSecretRepository(ctrl),
	}
	repos := store.Repositories{
		Users:       m.users,
		Teams:       m.teams,
		Memberships: m.memberships,
		Credentials: m.credentials,
		Secrets:     m.secrets,
	}

	return m, &store.Storages{Repositories: repos, Transactor: passThroughTx{repos: repos}}
}

func newMockCredentialService(t *testing.T) (*repoMocks, CredentialService) {
	t.Helper()
	m, storages := newMockStorages(t)
	return m, NewCredentialService(storages, logger.Nop())
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(s string) *string { return &s }
