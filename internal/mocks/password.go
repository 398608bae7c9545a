package mocks

import (
	"errors"

	"github.com/agendamed/agenda-api/internal/service/auth"
)

// ErrPasswordMismatch is returned by MockPasswordVerifier when the plaintext
// does not match the stored value.
var ErrPasswordMismatch = errors.New("password mismatch")

// MockPasswordHasher implements auth.PasswordHasher for testing. The default
// implementation prefixes the plaintext so tests can assert on it without
// paying bcrypt cost.
type MockPasswordHasher struct {
	HashFn func(password string) (string, error)
}

// Hash implements the PasswordHasher interface.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return "hashed:" + password, nil
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing. The
// default implementation accepts hashes produced by MockPasswordHasher.
type MockPasswordVerifier struct {
	CompareFn func(hashedPassword, password string) error
}

// Compare implements the PasswordVerifier interface.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if hashedPassword != "hashed:"+password {
		return ErrPasswordMismatch
	}
	return nil
}

// Ensure the mocks implement the interfaces.
var (
	_ auth.PasswordHasher   = (*MockPasswordHasher)(nil)
	_ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)
)
