// Package repositories contains the PostgreSQL-backed stores. Every method runs on the
// transaction carried by ctx when there is one, and on the pool otherwise.
package repositories

import (
	"context"
	"errors"
	"fmt"

	"expense-tracker/internal/errs"
	"expense-tracker/internal/interfaces"
	"expense-tracker/internal/schemas"
	"expense-tracker/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepo is the account store.
type AccountRepo interface {
	Create(ctx context.Context, account *schemas.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*schemas.Account, error)
	FindByEmail(ctx context.Context, email string) (*schemas.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Enable(ctx context.Context, id uuid.UUID) error
	Update(ctx context.Context, account *schemas.Account) error
	FindAll(ctx context.Context, offset, limit int) ([]*schemas.Account, int, error)
}

type AccountRepository struct {
	pool interfaces.PgxPoolIface
}

func NewAccountRepository(pool interfaces.PgxPoolIface) AccountRepo {
	return &AccountRepository{pool: pool}
}

// Create inserts account. A case-insensitive email collision yields ErrEmailTaken.
func (r *AccountRepository) Create(ctx context.Context, account *schemas.Account) error {
	_, err := utils.QuerierFromContext(ctx, r.pool).Exec(ctx, insertAccount,
		account.ID, account.Email, account.PasswordHash, account.FirstName, account.LastName,
		account.Role, account.Locked, account.Enabled, account.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errs.ErrEmailTaken
		}
		utils.LogMessageWithFieldsAndError(ctx, "error", "Error inserting account", err)
		return err
	}

	return nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*schemas.Account, error) {
	row := utils.QuerierFromContext(ctx, r.pool).QueryRow(ctx, selectAccountByID, id)
	return scanAccount(row)
}

// FindByEmail looks the account up ignoring the case of email.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*schemas.Account, error) {
	row := utils.QuerierFromContext(ctx, r.pool).QueryRow(ctx, selectAccountByEmail, email)
	return scanAccount(row)
}

func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := utils.QuerierFromContext(ctx, r.pool).QueryRow(ctx, existsAccountByEmail, email).Scan(&exists)
	return exists, err
}

func (r *AccountRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := utils.QuerierFromContext(ctx, r.pool).QueryRow(ctx, existsAccountByID, id).Scan(&exists)
	return exists, err
}

// Enable flips the enabled flag of a disabled account. It fails with ErrUserAlreadyEnabled
// when no disabled account with that id exists.
func (r *AccountRepository) Enable(ctx context.Context, id uuid.UUID) error {
	tag, err := utils.QuerierFromContext(ctx, r.pool).Exec(ctx, enableAccount, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("enable account %s: %w", id, errs.ErrUserAlreadyEnabled)
	}

	return nil
}

// Update stores the mutable profile fields of account.
func (r *AccountRepository) Update(ctx context.Context, account *schemas.Account) error {
	tag, err := utils.QuerierFromContext(ctx, r.pool).Exec(ctx, updateAccount,
		account.ID, account.Email, account.PasswordHash, account.FirstName, account.LastName)
	if err != nil {
		if isUniqueViolation(err) {
			return errs.ErrEmailTaken
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}

// FindAll returns one page of accounts and the total number of accounts.
func (r *AccountRepository) FindAll(ctx context.Context, offset, limit int) ([]*schemas.Account, int, error) {
	querier := utils.QuerierFromContext(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countAccounts).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := querier.Query(ctx, selectAccounts, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	accounts := make([]*schemas.Account, 0, limit)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, 0, err
		}
		accounts = append(accounts, account)
	}

	return accounts, total, rows.Err()
}

func scanAccount(row pgx.Row) (*schemas.Account, error) {
	account := &schemas.Account{}
	err := row.Scan(&account.ID, &account.Email, &account.PasswordHash, &account.FirstName, &account.LastName,
		&account.Role, &account.Locked, &account.Enabled, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}

	return account, nil
}
