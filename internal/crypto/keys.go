package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for deriving the at-rest encryption key
const (
	// Argon2Time is the iteration count (time cost)
	Argon2Time = 1
	// Argon2Memory is the memory cost in KB (64MB)
	Argon2Memory = 64 * 1024
	// Argon2Threads is the parallelism degree
	Argon2Threads = 4
	// SaltSize is the salt length in bytes
	SaltSize = 32
)

// GenerateSalt returns a cryptographically random salt.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKey derives the at-rest encryption key from a passphrase using
// Argon2id. The same passphrase and salt always yield the same key, so the
// salt must be persisted alongside the encrypted store.
func DeriveKey(passphrase string, salt []byte) ([]byte, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase cannot be empty")
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("salt must be %d bytes, got %d", SaltSize, len(salt))
	}

	return argon2.IDKey([]byte(passphrase), salt, Argon2Time, Argon2Memory, Argon2Threads, KeySize), nil
}
