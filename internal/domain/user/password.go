package user

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed   = errors.New("password hashing failed")
	ErrPasswordInvalid = errors.New("password does not match")
)

func HashPassword(p Password) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(p.Value()), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hashed), nil
}

// VerifyPassword compares in constant time; any mismatch collapses to ErrPasswordInvalid.
func VerifyPassword(hash string, p Password) error {
	if hash == "" {
		return ErrPasswordInvalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(p.Value())); err != nil {
		return ErrPasswordInvalid
	}
	return nil
}
