package service

import (
	"golang.org/x/crypto/bcrypt"
)

// Password hashing abstraction. bcrypt embeds the salt in the hash, so the
// users table carries a single password_hash column and comparison is
// constant-time. Plaintext never touches storage.

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
