package services

import (
	"context"
	"fmt"
	"time"

	"expense-tracker/internal/errs"
	"expense-tracker/internal/managers"
	"expense-tracker/internal/repositories"
	"expense-tracker/internal/schemas"

	"github.com/google/uuid"
)

type TransactionSvc interface {
	GetTransactions(ctx context.Context, offset, limit int) ([]*schemas.Transaction, int, error)
	GetTransaction(ctx context.Context, id int64) (*schemas.Transaction, error)
	GetTransactionsForUser(ctx context.Context, filter *schemas.TransactionFilter) ([]*schemas.Transaction, int, error)
	CreateTransaction(ctx context.Context, request *schemas.TransactionRequest) (*schemas.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, request *schemas.TransactionRequest) (*schemas.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
}

type TransactionService struct {
	databaseMgr     managers.DatabaseMgr
	transactionRepo repositories.TransactionRepo
	categoryRepo    repositories.CategoryRepo
	userService     UserSvc
}

func NewTransactionService(databaseMgr managers.DatabaseMgr, transactionRepo repositories.TransactionRepo,
	categoryRepo repositories.CategoryRepo, userService UserSvc) TransactionSvc {
	return &TransactionService{
		databaseMgr:     databaseMgr,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		userService:     userService,
	}
}

func (s *TransactionService) GetTransactions(ctx context.Context, offset, limit int) ([]*schemas.Transaction, int, error) {
	return s.transactionRepo.FindAll(ctx, offset, limit)
}

func (s *TransactionService) GetTransaction(ctx context.Context, id int64) (*schemas.Transaction, error) {
	return s.transactionRepo.FindByID(ctx, id)
}

// GetTransactionsForUser pages through the transactions of an existing user.
func (s *TransactionService) GetTransactionsForUser(ctx context.Context, filter *schemas.TransactionFilter) ([]*schemas.Transaction, int, error) {
	exists, err := s.userService.ExistsByID(ctx, filter.AccountID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, errs.ErrUserNotFound
	}

	return s.transactionRepo.FindForUser(ctx, filter)
}

// CreateTransaction books a transaction for an existing user in an existing category.
func (s *TransactionService) CreateTransaction(ctx context.Context, request *schemas.TransactionRequest) (*schemas.Transaction, error) {
	accountID, err := uuid.Parse(request.UserID)
	if err != nil {
		return nil, fmt.Errorf("user id %q: %w", request.UserID, errs.ErrInvalidInput)
	}
	date, err := parseDate(request.DateAt)
	if err != nil {
		return nil, err
	}

	transaction := &schemas.Transaction{
		Type:        request.Type,
		Amount:      request.Amount,
		Date:        date,
		Description: request.Description,
		AccountID:   accountID,
		CategoryID:  request.CategoryID,
	}

	err = s.databaseMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.userService.GetUserByID(txCtx, accountID); err != nil {
			return err
		}
		if _, err := s.categoryRepo.FindByID(txCtx, request.CategoryID); err != nil {
			return err
		}
		return s.transactionRepo.Create(txCtx, transaction)
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// UpdateTransaction changes amount, description, date and category. Type and owner are kept.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id int64, request *schemas.TransactionRequest) (*schemas.Transaction, error) {
	date, err := parseDate(request.DateAt)
	if err != nil {
		return nil, err
	}

	var transaction *schemas.Transaction
	err = s.databaseMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		transaction, err = s.transactionRepo.FindByID(txCtx, id)
		if err != nil {
			return err
		}

		if transaction.CategoryID != request.CategoryID {
			if _, err := s.categoryRepo.FindByID(txCtx, request.CategoryID); err != nil {
				return err
			}
			transaction.CategoryID = request.CategoryID
		}

		transaction.Amount = request.Amount
		transaction.Description = request.Description
		transaction.Date = date
		return s.transactionRepo.Update(txCtx, transaction)
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, id int64) error {
	return s.transactionRepo.Delete(ctx, id)
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(schemas.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: %w", value, errs.ErrInvalidInput)
	}
	return date, nil
}
