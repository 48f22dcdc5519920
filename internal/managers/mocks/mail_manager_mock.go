package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockMailManager struct {
	mock.Mock
}

func (m *MockMailManager) SendConfirmationLinkMail(ctx context.Context, emailTo, link string) error {
	args := m.Called(ctx, emailTo, link)
	return args.Error(0)
}
