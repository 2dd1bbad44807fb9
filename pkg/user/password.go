package user

import (
	"crypto/sha256"
	"encoding/hex"
)

// TODO: migrate stored hashes to bcrypt. Existing accounts were created with
// unsalted SHA-256 digests, so the digest format has to stay until a
// rehash-on-login migration lands.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func CheckPassword(password, passwordHash string) bool {
	return HashPassword(password) == passwordHash
}
