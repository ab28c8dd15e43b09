package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when a user with the same username
	// already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTeamNotFound is returned when no team matches the lookup.
	ErrTeamNotFound = errors.New("team was not found")

	// ErrTeamCodeExists is returned when a freshly generated invite code
	// collides with an existing team.
	ErrTeamCodeExists = errors.New("team code already exists")

	// ErrMembershipNotFound is returned when the user has no membership row
	// in the team, or none with the requested role.
	ErrMembershipNotFound = errors.New("membership was not found")

	// ErrMembershipExists is returned when the user already has a role in
	// the team.
	ErrMembershipExists = errors.New("membership already exists")

	// ErrCredentialNotFound is returned when no credential matches the lookup.
	ErrCredentialNotFound = errors.New("credential was not found")

	// ErrCredentialGroupExists is returned when another credential already
	// uses the group. Concurrent adds to the same group race on it.
	ErrCredentialGroupExists = errors.New("credential group already exists")

	// ErrSecretNotFound is returned when the user holds no secret for the
	// credential.
	ErrSecretNotFound = errors.New("credential secret was not found")

	// ErrSecretAlreadyExists is returned when the user already holds a
	// secret for the credential.
	ErrSecretAlreadyExists = errors.New("credential secret already exists")
)

// Low-level database operation errors.
var (
	// ErrUnsupportedDriver is returned for an unknown storage driver.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")

	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails. The
	// transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
