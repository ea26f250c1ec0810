package mocks

import "context"

// MockPasswordHasher implements auth.PasswordHasher for testing
type MockPasswordHasher struct {
	// HashFn allows for custom hashing logic in tests
	HashFn func(ctx context.Context, plaintext string) (string, error)

	// HashResult is returned by the default implementation
	HashResult string

	// HashError is returned by the default implementation when set
	HashError error

	// HashCallCount tracks how many times Hash was called
	HashCallCount int

	// HashCalledWith stores the last plaintext passed to Hash
	HashCalledWith string
}

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	m.HashCallCount++
	m.HashCalledWith = plaintext

	if m.HashFn != nil {
		return m.HashFn(ctx, plaintext)
	}

	if m.HashError != nil {
		return "", m.HashError
	}

	if m.HashResult != "" {
		return m.HashResult, nil
	}
	return "hashed:" + plaintext, nil
}
