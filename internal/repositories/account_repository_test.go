package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"expense-tracker/internal/errs"
	"expense-tracker/internal/schemas"
	"expense-tracker/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountColumnNames = []string{"user_id", "email", "password_hash", "first_name", "last_name", "user_role", "locked", "enabled", "created_at"}

func newPoolMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	poolMock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return poolMock
}

func testAccount() *schemas.Account {
	return &schemas.Account{
		ID:           uuid.New(),
		Email:        "john@example.com",
		PasswordHash: "$2a$10$hash",
		FirstName:    "John",
		LastName:     "Doe",
		Role:         schemas.DefaultRole,
		CreatedAt:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func accountRow(account *schemas.Account) *pgxmock.Rows {
	return pgxmock.NewRows(accountColumnNames).AddRow(account.ID, account.Email, account.PasswordHash,
		account.FirstName, account.LastName, account.Role, account.Locked, account.Enabled, account.CreatedAt)
}

func TestAccountCreate(t *testing.T) {
	poolMock := newPoolMock(t)
	repo := NewAccountRepository(poolMock)
	account := testAccount()

	poolMock.ExpectExec("INSERT INTO users").
		WithArgs(account.ID, account.Email, account.PasswordHash, account.FirstName, account.LastName,
			account.Role, false, false, account.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), account))
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestAccountCreateDuplicateEmail(t *testing.T) {
	poolMock := newPoolMock(t)
	repo := NewAccountRepository(poolMock)

	poolMock.ExpectExec("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := repo.Create(context.Background(), testAccount())
	assert.ErrorIs(t, err, errs.ErrEmailTaken)
	assert.ErrorIs(t, err, errs.ErrAlreadyExists)
}

func TestAccountFindByEmailIgnoresCase(t *testing.T) {
	poolMock := newPoolMock(t)
	repo := NewAccountRepository(poolMock)
	account := testAccount()

	poolMock.ExpectQuery(regexp.QuoteMeta("WHERE lower(email) = lower($1)")).
		WithArgs("JOHN@example.com").
		WillReturnRows(accountRow(account))

	found, err := repo.FindByEmail(context.Background(), "JOHN@example.com")
	require.NoError(t, err)
	assert.Equal(t, account, found)
}

func TestAccountFindByIDNotFound(t *testing.T) {
	poolMock := newPoolMock(t)
	repo := NewAccountRepository(poolMock)
	id := uuid.New()

	poolMock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1")).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByID(context.Background(), id)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestAccountExistsByEmail(t *testing.T) {
	poolMock := newPoolMock(t)
	repo := NewAccountRepository(poolMock)

	poolMock.ExpectQuery("SELECT EXISTS").
		WithArgs("john@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByEmail(context.Background(), "john@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAccountEnable(t *testing.T) {
	poolMock := newPoolMock(t)
	repo := NewAccountRepository(poolMock)
	id := uuid.New()

	poolMock.ExpectExec(regexp.QuoteMeta("SET enabled = TRUE")).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.Enable(context.Background(), id))
}

func TestAccountEnableTwice(t *testing.T) {
	poolMock := newPoolMock(t)
	repo := NewAccountRepository(poolMock)
	id := uuid.New()

	poolMock.ExpectExec(regexp.QuoteMeta("WHERE user_id = $1 AND enabled = FALSE")).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Enable(context.Background(), id)
	assert.ErrorIs(t, err, errs.ErrUserAlreadyEnabled)
	assert.ErrorIs(t, err, errs.ErrInvariantViolation)
}

func TestAccountUpdate(t *testing.T) {
	testCases := []struct {
		name     string
		result   pgconn.CommandTag
		dbErr    error
		expected error
	}{
		{"Updated", pgxmock.NewResult("UPDATE", 1), nil, nil},
		{"Missing", pgxmock.NewResult("UPDATE", 0), nil, errs.ErrUserNotFound},
		{"EmailTaken", pgconn.CommandTag{}, &pgconn.PgError{Code: pgerrcode.UniqueViolation}, errs.ErrEmailTaken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			poolMock := newPoolMock(t)
			repo := NewAccountRepository(poolMock)
			account := testAccount()

			exec := poolMock.ExpectExec("UPDATE users").
				WithArgs(account.ID, account.Email, account.PasswordHash, account.FirstName, account.LastName)
			if tc.dbErr != nil {
				exec.WillReturnError(tc.dbErr)
			} else {
				exec.WillReturnResult(tc.result)
			}

			err := repo.Update(context.Background(), account)
			if tc.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expected)
			}
		})
	}
}

func TestAccountFindAll(t *testing.T) {
	poolMock := newPoolMock(t)
	repo := NewAccountRepository(poolMock)
	first, second := testAccount(), testAccount()
	second.Email = "jane@example.com"

	poolMock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(12))
	poolMock.ExpectQuery(regexp.QuoteMeta("LIMIT $1 OFFSET $2")).
		WithArgs(2, 10).
		WillReturnRows(accountRow(first).AddRow(second.ID, second.Email, second.PasswordHash,
			second.FirstName, second.LastName, second.Role, second.Locked, second.Enabled, second.CreatedAt))

	accounts, total, err := repo.FindAll(context.Background(), 10, 2)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.Equal(t, []*schemas.Account{first, second}, accounts)
}

func TestAccountRepositoryJoinsTransaction(t *testing.T) {
	poolMock := newPoolMock(t)
	repo := NewAccountRepository(poolMock)
	account := testAccount()

	poolMock.ExpectBegin()
	poolMock.ExpectExec("INSERT INTO users").
		WithArgs(account.ID, account.Email, account.PasswordHash, account.FirstName, account.LastName,
			account.Role, false, false, account.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	poolMock.ExpectRollback()

	failure := errors.New("token insert failed")
	err := utils.RunInTransaction(context.Background(), poolMock, func(txCtx context.Context) error {
		require.NoError(t, repo.Create(txCtx, account))
		return failure
	})

	assert.ErrorIs(t, err, failure)
	assert.NoError(t, poolMock.ExpectationsWereMet())
}
