package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/argon2"

	"chacha/internal/domain"
	"chacha/internal/util/memzero"
)

// SaltBytes is the required salt length for DeriveKey.
const SaltBytes = 16

var ErrInvalidSaltLength = errors.New("salt: want 16 bytes")

// DeriveKey derives a cipher key from a passphrase and salt using Argon2id.
// The same passphrase and salt always derive the same key.
func DeriveKey(passphrase string, salt []byte) (domain.Key, error) {
	if len(salt) != SaltBytes {
		return domain.Key{}, ErrInvalidSaltLength
	}
	raw := argon2.IDKey([]byte(passphrase), salt, 1<<16, 8, 1, 32)
	defer memzero.Zero(raw)
	return domain.ParseKey(raw)
}

// RandomKey returns a fresh key from the system CSPRNG.
func RandomKey() (domain.Key, error) {
	var k domain.Key
	if _, err := rand.Read(k[:]); err != nil {
		return domain.Key{}, err
	}
	return k, nil
}

// RandomNonce returns a fresh nonce from the system CSPRNG.
func RandomNonce() (domain.Nonce, error) {
	var n domain.Nonce
	if _, err := rand.Read(n[:]); err != nil {
		return domain.Nonce{}, err
	}
	return n, nil
}

// RandomSalt returns a fresh DeriveKey salt from the system CSPRNG.
func RandomSalt() ([]byte, error) {
	salt := make([]byte, SaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// Fingerprint returns a short hex fingerprint of key material for display.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:10])
}
