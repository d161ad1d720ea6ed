// Package cryptox implements the credential hashing scheme for the local
// account store: an argon2id key derived from (secret, per-user salt) and a
// sha256 verifier of that key. Only salt and verifier are ever persisted;
// verification is constant-time.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// SaltSize is the number of random bytes generated for a new account's salt.
const SaltSize = 32

// DeriveKey stretches a secret with the given salt using argon2id.
func DeriveKey(secret []byte, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier reduces a derived key to the value stored at rest.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// HashSecret derives the at-rest verifier for a secret and salt in one step.
func HashSecret(secret []byte, salt []byte) []byte {
	return MakeVerifier(DeriveKey(secret, salt))
}

// VerifySecret reports whether the secret matches the stored verifier for the
// given salt. The comparison is constant-time.
func VerifySecret(secret []byte, salt []byte, verifier []byte) bool {
	candidate := HashSecret(secret, salt)
	return subtle.ConstantTimeCompare(candidate, verifier) == 1
}
