package password

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
)

const DefaultCost = bcrypt.DefaultCost

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

// IsHashed reports whether s already looks like a bcrypt hash ("$2a$", "$2b$", "$2y$").
func IsHashed(s string) bool {
	return strings.HasPrefix(s, "$2")
}

// EnsureHashed hashes s unless it is already a bcrypt hash. Seed data and
// account imports arrive pre-hashed.
func EnsureHashed(s string) (string, error) {
	if IsHashed(s) {
		return s, nil
	}
	return HashPassword(s)
}

func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}

// dummyHash is compared against when no account matches, so an unknown
// email costs the same bcrypt work as a wrong password.
var dummyHash = sync.OnceValue(func() string {
	h, err := bcrypt.GenerateFromPassword([]byte("library-backend-dummy"), DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(h)
})

// CompareDummy runs a full bcrypt comparison against a hash no account owns.
func CompareDummy(password string) error {
	if password == "" {
		return ErrInvalidPassword
	}
	return ComparePassword(dummyHash(), password)
}
