// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credential is the shared metadata of a login entry. A credential with a
// TeamID is shared: every member of that team can hold a secret for it.
// Group is an optional client-chosen key; at most one credential exists per
// non-empty group.
type Credential struct {
	CredentialID int64  `json:"id"`
	Login        string `json:"login"`
	RecordName   string `json:"record_name"`
	URL          string `json:"url"`
	Edited       bool   `json:"edited"`
	Group        string `json:"group"`
	TeamID       *int64 `json:"team_id"`
}

// TableName returns the name of the database table
// associated with the Credential model.
func (c Credential) TableName() string {
	return "credentials"
}

// IsShared reports whether the credential belongs to a team.
func (c Credential) IsShared() bool {
	return c.TeamID != nil && *c.TeamID != 0
}

// CredentialSecret is one user's password for a credential. At most one
// secret exists per (credential, user) pair.
type CredentialSecret struct {
	SecretID     int64  `json:"id"`
	Password     string `json:"password"`
	UserID       int64  `json:"user_id"`
	CredentialID int64  `json:"credential_id"`
}

// TableName returns the name of the database table
// associated with the CredentialSecret model.
func (s CredentialSecret) TableName() string {
	return "credential_secrets"
}

// CredentialPublic is the merged view of a credential and one of its secrets.
type CredentialPublic struct {
	CredentialID int64  `json:"id"`
	Login        string `json:"login"`
	RecordName   string `json:"record_name"`
	URL          string `json:"url"`
	Edited       bool   `json:"edited"`
	Group        string `json:"group"`
	TeamID       *int64 `json:"team_id"`
	Password     string `json:"password"`
	UserID       int64  `json:"user_id"`
}

// NewCredentialPublic merges c with secret s.
func NewCredentialPublic(c Credential, s CredentialSecret) CredentialPublic {
	return CredentialPublic{
		CredentialID: c.CredentialID,
		Login:        c.Login,
		RecordName:   c.RecordName,
		URL:          c.URL,
		Edited:       c.Edited,
		Group:        c.Group,
		TeamID:       c.TeamID,
		Password:     s.Password,
		UserID:       s.UserID,
	}
}

// CredentialWithSecret pairs a credential with one of its secrets.
type CredentialWithSecret struct {
	Credential Credential
	Secret     CredentialSecret
}

// CredentialCreate is the body of POST /api/credentials/. UserID addresses
// the secret to another user (used by admins sharing team credentials);
// when unset the secret belongs to the caller.
type CredentialCreate struct {
	Login      string `json:"login"`
	RecordName string `json:"record_name"`
	URL        string `json:"url"`
	Edited     bool   `json:"edited"`
	Group      string `json:"group"`
	TeamID     *int64 `json:"team_id"`
	Password   string `json:"password"`
	UserID     *int64 `json:"user_id"`
}

// Credential returns the metadata part of the request.
func (c CredentialCreate) Credential() Credential {
	return Credential{
		Login:      c.Login,
		RecordName: c.RecordName,
		URL:        c.URL,
		Edited:     c.Edited,
		Group:      c.Group,
		TeamID:     c.TeamID,
	}
}

// CredentialUpdate is a partial update. Only non-nil fields are applied:
// Password goes to the secret, UserID selects the secret in group updates
// and is never written, every other field goes to the credential.
type CredentialUpdate struct {
	// CredentialID is used by batch updates only.
	CredentialID *int64 `json:"id,omitempty"`

	Login      *string `json:"login,omitempty"`
	RecordName *string `json:"record_name,omitempty"`
	URL        *string `json:"url,omitempty"`
	Edited     *bool   `json:"edited,omitempty"`
	Group      *string `json:"group,omitempty"`
	Password   *string `json:"password,omitempty"`
	UserID     *int64  `json:"user_id,omitempty"`
}

// ApplyTo writes the metadata fields of the patch to c and reports whether
// anything changed.
func (u CredentialUpdate) ApplyTo(c *Credential) bool {
	changed := false
	if u.Login != nil {
		c.Login, changed = *u.Login, true
	}
	if u.RecordName != nil {
		c.RecordName, changed = *u.RecordName, true
	}
	if u.URL != nil {
		c.URL, changed = *u.URL, true
	}
	if u.Edited != nil {
		c.Edited, changed = *u.Edited, true
	}
	if u.Group != nil {
		c.Group, changed = *u.Group, true
	}
	return changed
}

// DetailResponse is an acknowledgement body for deletions.
type DetailResponse struct {
	Detail string `json:"detail"`
}
