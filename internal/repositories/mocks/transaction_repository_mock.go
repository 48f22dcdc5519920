package mocks

import (
	"context"

	"expense-tracker/internal/schemas"

	"github.com/stretchr/testify/mock"
)

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *schemas.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id int64) (*schemas.Transaction, error) {
	args := m.Called(ctx, id)
	transaction, _ := args.Get(0).(*schemas.Transaction)
	return transaction, args.Error(1)
}

func (m *MockTransactionRepository) FindAll(ctx context.Context, offset, limit int) ([]*schemas.Transaction, int, error) {
	args := m.Called(ctx, offset, limit)
	transactions, _ := args.Get(0).([]*schemas.Transaction)
	return transactions, args.Int(1), args.Error(2)
}

func (m *MockTransactionRepository) FindForUser(ctx context.Context, filter *schemas.TransactionFilter) ([]*schemas.Transaction, int, error) {
	args := m.Called(ctx, filter)
	transactions, _ := args.Get(0).([]*schemas.Transaction)
	return transactions, args.Int(1), args.Error(2)
}

func (m *MockTransactionRepository) Update(ctx context.Context, transaction *schemas.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
