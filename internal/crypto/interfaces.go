// Package crypto holds the cryptography of both sides. The server hashes
// passwords and generates team invite codes; the client owns the users' key
// pairs ([KeyChain]), which the server only stores as opaque strings.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns passwords into self-describing hash strings and
// checks passwords against them.
type PasswordHasher interface {
	// Hash returns the encoded hash of password with a fresh random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches encodedHash. A malformed
	// encodedHash is an error, a mismatch is not.
	Verify(password, encodedHash string) (bool, error)
}

// CodeGenerator produces team invite codes.
type CodeGenerator interface {
	// Generate returns a new uppercase invite code.
	Generate() (string, error)
}
