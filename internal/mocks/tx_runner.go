package mocks

import (
	"context"

	"github.com/fitlog/fittrack-api/internal/store"
)

// MockTxRunner implements store.TxRunner for testing. The default
// implementation invokes the function with a nil transaction, which the
// mock stores accept, so service read-modify-write sequences run without
// a database.
type MockTxRunner struct {
	// RunInTransactionFn allows for custom transaction logic in tests
	RunInTransactionFn func(ctx context.Context, fn store.TxFn) error

	// RunError short-circuits the transaction when set
	RunError error

	// RunCallCount tracks how many times RunInTransaction was called
	RunCallCount int
}

// RunInTransaction implements the store.TxRunner interface
func (m *MockTxRunner) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	m.RunCallCount++

	if m.RunInTransactionFn != nil {
		return m.RunInTransactionFn(ctx, fn)
	}

	if m.RunError != nil {
		return m.RunError
	}

	return fn(ctx, nil)
}
