package store

// Repositories groups the repositories bound to one connection or
// transaction.
type Repositories struct {
	Users       UserRepository
	Teams       TeamRepository
	Memberships MembershipRepository
	Credentials CredentialRepository
	Secrets     SecretRepository
}

// Storages is the storage layer handed to the services: repositories bound
// to the connection pool for single-statement reads, a Transactor for
// multi-step workflows and a health probe.
type Storages struct {
	Repositories
	Transactor Transactor
	Health     HealthChecker
}

// NewStorages wires the storage layer over db.
func NewStorages(db *DB) *Storages {
	return &Storages{
		Repositories: db.repositories(db.DB),
		Transactor:   db,
		Health:       db,
	}
}
