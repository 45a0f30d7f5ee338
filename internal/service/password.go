package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the hex SHA-256 digest of the plaintext. The digest
// is deliberately deterministic and unsalted to stay wire-compatible with
// existing stored credentials; production deployments should migrate to a
// salted KDF such as bcrypt.
func HashPassword(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether plaintext hashes to digest.
func VerifyPassword(plaintext, digest string) bool {
	h := HashPassword(plaintext)
	return subtle.ConstantTimeCompare([]byte(h), []byte(digest)) == 1
}
