package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-team-keeper/internal/store"
	"github.com/MKhiriev/go-team-keeper/models"
)

// The helpers below are the authorization rules shared by the credential
// and team services. They only read, and take the repositories explicitly
// so that they see the same transaction as the workflow calling them.

// roleIn returns the role userID holds in teamID, or "" when the user is
// not related to the team.
func roleIn(ctx context.Context, repos store.Repositories, teamID, userID int64) (models.Role, error) {
	membership, err := repos.Memberships.FindMembership(ctx, teamID, userID)
	if errors.Is(err, store.ErrMembershipNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return membership.Role, nil
}

func isAdmin(ctx context.Context, repos store.Repositories, teamID, userID int64) (bool, error) {
	role, err := roleIn(ctx, repos, teamID, userID)
	return role == models.RoleAdmin, err
}

func canAdd(ctx context.Context, repos store.Repositories, userID int64, teamID *int64) error {
	if teamID == nil || *teamID == 0 {
		return nil
	}

	admin, err := isAdmin(ctx, repos, *teamID, userID)
	if err != nil {
		return err
	}
	if !admin {
		return ErrNotPermitted
	}
	return nil
}

// ownSecret returns the credential together with the secret userID holds
// on it. A missing credential is ErrCredentialNotFound, a missing secret
// ErrNotPermitted.
func ownSecret(ctx context.Context, repos store.Repositories, userID, credentialID int64) (models.Credential, models.CredentialSecret, error) {
	credential, err := repos.Credentials.FindCredentialByID(ctx, credentialID)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return models.Credential{}, models.CredentialSecret{}, ErrCredentialNotFound
	}
	if err != nil {
		return models.Credential{}, models.CredentialSecret{}, err
	}

	secret, err := repos.Secrets.FindSecret(ctx, credentialID, userID)
	if errors.Is(err, store.ErrSecretNotFound) {
		return models.Credential{}, models.CredentialSecret{}, ErrNotPermitted
	}
	if err != nil {
		return models.Credential{}, models.CredentialSecret{}, err
	}

	return credential, secret, nil
}

func canAdminGroup(ctx context.Context, repos store.Repositories, userID int64, group string) (models.Credential, error) {
	credential, err := repos.Credentials.FindCredentialByGroup(ctx, group)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return models.Credential{}, ErrGroupNotFound
	}
	if err != nil {
		return models.Credential{}, err
	}
	if !credential.IsShared() {
		return models.Credential{}, ErrCredentialNotShared
	}

	admin, err := isAdmin(ctx, repos, *credential.TeamID, userID)
	if err != nil {
		return models.Credential{}, err
	}
	if !admin {
		return models.Credential{}, ErrNotPermitted
	}

	return credential, nil
}

// purgeCredentials deletes the secrets of userID on the credentials of
// teamID and garbage-collects the credentials left without secrets.
func purgeCredentials(ctx context.Context, repos store.Repositories, userID, teamID int64) error {
	items, err := repos.Secrets.ListUserTeamSecrets(ctx, userID, teamID)
	if err != nil {
		return err
	}

	for _, item := range items {
		if err = deleteSecretAndCollect(ctx, repos, item.Secret); err != nil {
			return err
		}
	}
	return nil
}

// deleteSecretAndCollect deletes secret and then its credential if no other
// secret references it.
func deleteSecretAndCollect(ctx context.Context, repos store.Repositories, secret models.CredentialSecret) error {
	if err := repos.Secrets.DeleteSecret(ctx, secret.SecretID); err != nil {
		return err
	}
	_, err := repos.Credentials.DeleteCredentialIfOrphaned(ctx, secret.CredentialID)
	return err
}
