package crypto

import "errors"

var (
	ErrInvalidHash         = errors.New("invalid encoded password hash")
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)
