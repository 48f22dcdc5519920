package mocks

import (
	"context"

	"expense-tracker/internal/schemas"

	"github.com/stretchr/testify/mock"
)

type MockQueueManager struct {
	mock.Mock
}

func (m *MockQueueManager) PublishMail(ctx context.Context, params *schemas.MailParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockQueueManager) Close() error {
	args := m.Called()
	return args.Error(0)
}
