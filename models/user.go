// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account entity used for authentication and authorization.
// PasswordHash is never serialized; the key fields are opaque blobs supplied
// by the client and passed through unchanged.
type User struct {
	// UserID is the unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// PasswordHash is the argon2id PHC string of the user's password.
	PasswordHash string `json:"-"`

	// PublicKey is the client-generated public key used by other users to
	// encrypt secrets addressed to this user.
	PublicKey string `json:"public_key"`

	// EncryptedPrivateKey is the user's private key, encrypted on the client.
	EncryptedPrivateKey string `json:"encrypted_private_key"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserPublic is the view of a user returned to other users and to the owner.
// MemberTeams lists teams where the user has the member role, AdminTeams the
// teams the user administers.
type UserPublic struct {
	UserID              int64        `json:"id"`
	Username            string       `json:"username"`
	PublicKey           string       `json:"public_key"`
	EncryptedPrivateKey string       `json:"encrypted_private_key"`
	MemberTeams         []TeamPublic `json:"member_teams"`
	AdminTeams          []TeamPublic `json:"admin_teams"`
}

// NewUserPublic builds the outbound view of u with the given team lists.
// Nil lists are normalized to empty slices so they encode as [].
func NewUserPublic(u User, memberTeams, adminTeams []TeamPublic) UserPublic {
	if memberTeams == nil {
		memberTeams = []TeamPublic{}
	}
	if adminTeams == nil {
		adminTeams = []TeamPublic{}
	}

	return UserPublic{
		UserID:              u.UserID,
		Username:            u.Username,
		PublicKey:           u.PublicKey,
		EncryptedPrivateKey: u.EncryptedPrivateKey,
		MemberTeams:         memberTeams,
		AdminTeams:          adminTeams,
	}
}

// RegisterRequest is the body of POST /api/users/.
type RegisterRequest struct {
	Username            string `json:"username"`
	Password            string `json:"password"`
	PublicKey           string `json:"public_key"`
	EncryptedPrivateKey string `json:"encrypted_private_key"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordRequest replaces the password and re-wrapped private key.
type ChangePasswordRequest struct {
	OldPassword         string `json:"old_password"`
	NewPassword         string `json:"new_password"`
	EncryptedPrivateKey string `json:"encrypted_private_key"`
}

// ChangeKeysRequest replaces the user's key pair.
type ChangeKeysRequest struct {
	PublicKey           string `json:"public_key"`
	EncryptedPrivateKey string `json:"encrypted_private_key"`
}
