package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername     = errors.New("username is required")
	ErrUsernameTooLong   = errors.New("username is too long")
	ErrEmptyPassword     = errors.New("password is required")
	ErrEmptyNewPassword  = errors.New("new password is required")
	ErrEmptyPublicKey    = errors.New("public key is required")
	ErrEmptyTeamName     = errors.New("team name is required")
	ErrEmptyTeamCode     = errors.New("team code is required")
	ErrInvalidAction     = errors.New("action must be accept or decline")
	ErrInvalidRole       = errors.New("role must be member or admin")
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrInvalidTeamID     = errors.New("invalid team id")
	ErrInvalidCredential = errors.New("invalid credential id")
)
