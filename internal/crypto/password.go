// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-team-keeper/internal/utils"
)

// Argon2Params are the Argon2id tuning parameters.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	SaltLen uint32
	KeyLen  uint32
}

// DefaultArgon2Params are the parameters recommended by OWASP (2024):
// 1 iteration, 64 MiB, 4 threads, 16-byte salt, 32-byte key.
var DefaultArgon2Params = Argon2Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	SaltLen: 16,
	KeyLen:  32,
}

// argon2Hasher implements [PasswordHasher] with Argon2id. Hashes are encoded
// in the PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// with salt and key in unpadded standard base64. When a pepper is configured
// the password is first keyed with HMAC-SHA256 so that a leaked database
// alone is not enough to mount a dictionary attack.
type argon2Hasher struct {
	params Argon2Params
	pepper *utils.Hasher
}

// NewPasswordHasher returns an Argon2id [PasswordHasher] with
// [DefaultArgon2Params]. An empty pepper disables peppering.
func NewPasswordHasher(pepper string) PasswordHasher {
	return NewPasswordHasherWithParams(pepper, DefaultArgon2Params)
}

// NewPasswordHasherWithParams is [NewPasswordHasher] with custom parameters.
// Verification always uses the parameters encoded in the hash.
func NewPasswordHasherWithParams(pepper string, params Argon2Params) PasswordHasher {
	h := &argon2Hasher{params: params}
	if pepper != "" {
		h.pepper = utils.NewHasher(pepper)
	}
	return h
}

func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	p := h.params
	key := argon2.IDKey(h.input(password), salt, p.Time, p.Memory, p.Threads, p.KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (h *argon2Hasher) Verify(password, encodedHash string) (bool, error) {
	p, salt, key, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	other := argon2.IDKey(h.input(password), salt, p.Time, p.Memory, p.Threads, p.KeyLen)

	return subtle.ConstantTimeCompare(key, other) == 1, nil
}

func (h *argon2Hasher) input(password string) []byte {
	if h.pepper == nil {
		return []byte(password)
	}
	return h.pepper.Sum([]byte(password))
}

func decodeHash(encodedHash string) (Argon2Params, []byte, []byte, error) {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Argon2Params{}, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	if version != argon2.Version {
		return Argon2Params{}, nil, nil, ErrIncompatibleVersion
	}

	var p Argon2Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	if len(salt) == 0 || len(key) == 0 {
		return Argon2Params{}, nil, nil, ErrInvalidHash
	}
	p.SaltLen = uint32(len(salt))
	p.KeyLen = uint32(len(key))

	return p, salt, key, nil
}
