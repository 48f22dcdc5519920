package services

import (
	"context"
	"testing"
	"time"

	"expense-tracker/internal/errs"
	repoMocks "expense-tracker/internal/repositories/mocks"
	"expense-tracker/internal/schemas"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserServiceWithMock() (UserSvc, *repoMocks.MockAccountRepository) {
	accounts := &repoMocks.MockAccountRepository{}
	options := RegistrationOptions{Now: func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }}
	return NewUserService(accounts, options), accounts
}

func storedAccount(t *testing.T, password string) *schemas.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &schemas.Account{
		ID:           uuid.New(),
		Email:        "john@example.com",
		PasswordHash: string(hash),
		FirstName:    "John",
		LastName:     "Doe",
		Role:         schemas.DefaultRole,
	}
}

func TestEnableUserRejectsEnabledAccount(t *testing.T) {
	service, accounts := newUserServiceWithMock()
	account := &schemas.Account{ID: uuid.New(), Enabled: true}

	err := service.EnableUser(context.Background(), account)
	assert.ErrorIs(t, err, errs.ErrUserAlreadyEnabled)
	accounts.AssertNotCalled(t, "Enable", mock.Anything, mock.Anything)
}

func TestUpdateUser(t *testing.T) {
	testCases := []struct {
		name       string
		request    schemas.UserUpdateRequest
		emailTaken bool
		expected   error
		rehashed   bool
	}{
		{
			name:     "NoChanges",
			request:  schemas.UserUpdateRequest{FirstName: "John", LastName: "Doe", Email: "john@example.com", Password: "password"},
			expected: errs.ErrNoChanges,
		},
		{
			name:    "NameChanged",
			request: schemas.UserUpdateRequest{FirstName: "Johnny", LastName: "Doe", Email: "john@example.com", Password: "password"},
		},
		{
			name:     "PasswordChanged",
			request:  schemas.UserUpdateRequest{FirstName: "John", LastName: "Doe", Email: "john@example.com", Password: "new-password"},
			rehashed: true,
		},
		{
			name:    "EmailCaseChangedOnly",
			request: schemas.UserUpdateRequest{FirstName: "John", LastName: "Doe", Email: "John@Example.com", Password: "password"},
		},
		{
			name:       "EmailTaken",
			request:    schemas.UserUpdateRequest{FirstName: "John", LastName: "Doe", Email: "jane@example.com", Password: "password"},
			emailTaken: true,
			expected:   errs.ErrEmailTaken,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, accounts := newUserServiceWithMock()
			account := storedAccount(t, "password")
			originalHash := account.PasswordHash

			accounts.On("FindByID", mock.Anything, account.ID).Return(account, nil)
			accounts.On("ExistsByEmail", mock.Anything, tc.request.Email).Return(tc.emailTaken, nil).Maybe()
			accounts.On("Update", mock.Anything, account).Return(nil).Maybe()

			updated, err := service.UpdateUser(context.Background(), account.ID, &tc.request)
			if tc.expected != nil {
				assert.ErrorIs(t, err, tc.expected)
				accounts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.request.Email, updated.Email)
			assert.Equal(t, tc.rehashed, originalHash != updated.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte(tc.request.Password)))
			accounts.AssertNumberOfCalls(t, "Update", 1)
		})
	}
}
