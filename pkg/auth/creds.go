package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier abstracts how passwords are stored and checked so a real
// strategy can replace plain-text comparison without touching the data model.
type CredentialVerifier interface {
	Encode(password string) (string, error)
	Compare(stored, candidate string) bool
}

// PlainTextVerifier stores passwords verbatim and compares by equality. This
// is the default, matching the persisted state layout.
type PlainTextVerifier struct{}

func (v *PlainTextVerifier) Encode(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	return password, nil
}

func (v *PlainTextVerifier) Compare(stored, candidate string) bool {
	return stored == candidate
}

// BcryptVerifier is the substitutable hashing strategy. Note that switching
// an existing dataset over invalidates every stored plain-text password.
type BcryptVerifier struct{}

func (v *BcryptVerifier) Encode(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (v *BcryptVerifier) Compare(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}
