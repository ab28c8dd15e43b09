package service

import "errors"

// Error kinds. Every error a service returns to its caller for a rejected
// request wraps exactly one of them; transports map kinds to status codes
// with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrInvalid      = errors.New("invalid request")
	ErrUnauthorized = errors.New("unauthorized")
)

// kindError is an error of a given kind whose message is shown to clients.
type kindError struct {
	kind error
	msg  string
}

func newError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

var (
	ErrNotPermitted = newError(ErrForbidden, "Not permitted")

	ErrCredentialNotFound  = newError(ErrNotFound, "Credential not found")
	ErrGroupNotFound       = newError(ErrNotFound, "Group not found")
	ErrSecretNotFound      = newError(ErrNotFound, "Secret not found for this user")
	ErrCredentialNotShared = newError(ErrForbidden, "Credential does not belong to a team")
	ErrSecretExists        = newError(ErrConflict, "Secret already exists for this user")
	ErrGroupTaken          = newError(ErrConflict, "Group is already used by another credential")
	ErrGroupBusy           = newError(ErrConflict, "Group is being modified concurrently, try again")
	ErrGroupUserRequired   = newError(ErrInvalid, "user_id is required for group updates")

	ErrInvalidTeamCode     = newError(ErrInvalid, "Invalid team code")
	ErrInvalidTeamID       = newError(ErrInvalid, "Invalid team id")
	ErrAlreadyMember       = newError(ErrConflict, "You are already a member of this team")
	ErrApplicationPending  = newError(ErrConflict, "You already have a pending application for this team")
	ErrApplicationNotFound = newError(ErrNotFound, "Application not found")
	ErrMemberNotFound      = newError(ErrNotFound, "Member not found in a team")
	ErrNotTeamMember       = newError(ErrNotFound, "You are not a member of this team")
	ErrTeamNotFound        = newError(ErrNotFound, "Team not found")
	ErrInvalidAction       = newError(ErrInvalid, "Invalid action")
	ErrInvalidRole         = newError(ErrInvalid, "Invalid role")

	ErrUserNotFound            = newError(ErrNotFound, "User not found")
	ErrUsernameTaken           = newError(ErrConflict, "Username already registered")
	ErrWrongOldPassword        = newError(ErrInvalid, "Incorrect old password")
	ErrWrongPassword           = newError(ErrUnauthorized, "Incorrect username or password")
	ErrTokenIsExpiredOrInvalid = newError(ErrUnauthorized, "Could not validate credentials")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrTeamCodeGeneration    = errors.New("could not generate a unique team code")
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
