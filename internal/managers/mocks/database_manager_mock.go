package mocks

import (
	"context"

	"expense-tracker/internal/interfaces"
	"expense-tracker/internal/utils"

	"github.com/stretchr/testify/mock"
)

type MockDatabaseManager struct {
	mock.Mock
}

func (m *MockDatabaseManager) GetPool() interfaces.PgxPoolIface {
	args := m.Called()
	return args.Get(0).(interfaces.PgxPoolIface)
}

// RunInTransaction opens the transaction on the mocked pool, so pgxmock expectations
// (ExpectBegin, ExpectCommit, ExpectRollback) describe the transaction boundaries.
func (m *MockDatabaseManager) RunInTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	return utils.RunInTransaction(ctx, m.GetPool(), fn)
}
