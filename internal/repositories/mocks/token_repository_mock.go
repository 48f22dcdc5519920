package mocks

import (
	"context"
	"time"

	"expense-tracker/internal/schemas"

	"github.com/stretchr/testify/mock"
)

type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Save(ctx context.Context, token *schemas.ConfirmationToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenRepository) FindByToken(ctx context.Context, token string) (*schemas.ConfirmationToken, error) {
	args := m.Called(ctx, token)
	found, _ := args.Get(0).(*schemas.ConfirmationToken)
	return found, args.Error(1)
}

func (m *MockTokenRepository) Confirm(ctx context.Context, token string, confirmedAt time.Time) error {
	args := m.Called(ctx, token, confirmedAt)
	return args.Error(0)
}
