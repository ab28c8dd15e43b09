// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/box"
)

var (
	ErrWrongPassword    = errors.New("wrong password or corrupted private key")
	ErrInvalidKey       = errors.New("invalid key encoding")
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	ErrDecryptSecret    = errors.New("secret cannot be decrypted with this key")
)

// KeyChain is the client-side key management. Every user owns an X25519
// key pair: the public key is published so that team admins can seal
// secrets to it, the private key is stored on the server wrapped with a key
// derived from the user's password.
type KeyChain interface {
	// NewKeyPair generates a key pair and wraps the private key with password.
	NewKeyPair(password string) (publicKey, encryptedPrivateKey string, err error)

	// UnlockPrivateKey unwraps encryptedPrivateKey with password.
	UnlockPrivateKey(encryptedPrivateKey, password string) (*[32]byte, error)

	// RewrapPrivateKey re-encrypts the private key under newPassword.
	RewrapPrivateKey(encryptedPrivateKey, oldPassword, newPassword string) (string, error)

	// Seal encrypts plaintext so that only the owner of publicKey can read it.
	Seal(publicKey, plaintext string) (string, error)

	// Open decrypts a value produced by Seal for the given key pair.
	Open(ciphertext, publicKey string, privateKey *[32]byte) (string, error)
}

// keyChain implements [KeyChain]. The wrapped private key is
//
//	base64(salt ‖ nonce ‖ AES-256-GCM(KEK, privateKey))
//
// where KEK = Argon2id(password, salt). Secrets are NaCl anonymous boxes,
// base64 encoded.
type keyChain struct {
	params Argon2Params
}

// NewKeyChain returns a [KeyChain] deriving wrapping keys with
// [DefaultArgon2Params].
func NewKeyChain() KeyChain {
	return NewKeyChainWithParams(DefaultArgon2Params)
}

// NewKeyChainWithParams is [NewKeyChain] with custom Argon2id parameters.
// Keys wrapped with one parameter set can only be unwrapped with the same.
func NewKeyChainWithParams(params Argon2Params) KeyChain {
	return &keyChain{params: params}
}

func (k *keyChain) NewKeyPair(password string) (string, string, error) {
	publicKey, privateKey, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return "", "", fmt.Errorf("generate key pair: %w", err)
	}

	wrapped, err := k.wrap(privateKey[:], password)
	if err != nil {
		return "", "", err
	}

	return base64.StdEncoding.EncodeToString(publicKey[:]), wrapped, nil
}

func (k *keyChain) UnlockPrivateKey(encryptedPrivateKey, password string) (*[32]byte, error) {
	raw, err := k.unwrap(encryptedPrivateKey, password)
	if err != nil {
		return nil, err
	}
	if len(raw) != 32 {
		return nil, ErrInvalidKey
	}

	var privateKey [32]byte
	copy(privateKey[:], raw)
	return &privateKey, nil
}

func (k *keyChain) RewrapPrivateKey(encryptedPrivateKey, oldPassword, newPassword string) (string, error) {
	raw, err := k.unwrap(encryptedPrivateKey, oldPassword)
	if err != nil {
		return "", err
	}
	return k.wrap(raw, newPassword)
}

func (k *keyChain) Seal(publicKey, plaintext string) (string, error) {
	recipient, err := decodeKey(publicKey)
	if err != nil {
		return "", err
	}

	sealed, err := box.SealAnonymous(nil, []byte(plaintext), recipient, rand.Reader)
	if err != nil {
		return "", fmt.Errorf("seal secret: %w", err)
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (k *keyChain) Open(ciphertext, publicKey string, privateKey *[32]byte) (string, error) {
	owner, err := decodeKey(publicKey)
	if err != nil {
		return "", err
	}

	sealed, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptSecret, err)
	}

	plaintext, ok := box.OpenAnonymous(nil, sealed, owner, privateKey)
	if !ok {
		return "", ErrDecryptSecret
	}
	return string(plaintext), nil
}

func (k *keyChain) kek(password string, salt []byte) []byte {
	p := k.params
	return argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, p.KeyLen)
}

func (k *keyChain) wrap(plaintext []byte, password string) (string, error) {
	salt := make([]byte, k.params.SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := newGCM(k.kek(password, salt))
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := append(salt, nonce...)
	blob = gcm.Seal(blob, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

func (k *keyChain) unwrap(encoded, password string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	saltLen := int(k.params.SaltLen)
	if len(blob) < saltLen {
		return nil, ErrCiphertextTooShort
	}
	salt, rest := blob[:saltLen], blob[saltLen:]

	gcm, err := newGCM(k.kek(password, salt))
	if err != nil {
		return nil, err
	}
	if len(rest) < gcm.NonceSize() {
		return nil, ErrCiphertextTooShort
	}
	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrWrongPassword
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

func decodeKey(encoded string) (*[32]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(raw) != 32 {
		return nil, ErrInvalidKey
	}

	var key [32]byte
	copy(key[:], raw)
	return &key, nil
}
