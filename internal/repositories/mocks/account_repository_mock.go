package mocks

import (
	"context"

	"expense-tracker/internal/schemas"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *schemas.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*schemas.Account, error) {
	args := m.Called(ctx, id)
	account, _ := args.Get(0).(*schemas.Account)
	return account, args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*schemas.Account, error) {
	args := m.Called(ctx, email)
	account, _ := args.Get(0).(*schemas.Account)
	return account, args.Error(1)
}

func (m *MockAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) Enable(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *schemas.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAll(ctx context.Context, offset, limit int) ([]*schemas.Account, int, error) {
	args := m.Called(ctx, offset, limit)
	accounts, _ := args.Get(0).([]*schemas.Account)
	return accounts, args.Int(1), args.Error(2)
}
