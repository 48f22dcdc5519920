package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"expense-tracker/internal/errs"
	"expense-tracker/internal/schemas"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transactionRows(transactions ...*schemas.Transaction) *pgxmock.Rows {
	rows := pgxmock.NewRows(transactionColumns)
	for _, tr := range transactions {
		rows.AddRow(tr.ID, tr.Type, tr.Amount, tr.Date, tr.Description, tr.AccountID, tr.CategoryID)
	}
	return rows
}

func testTransaction(accountID uuid.UUID) *schemas.Transaction {
	return &schemas.Transaction{
		ID:          1,
		Type:        schemas.TransactionTypeExpense,
		Amount:      42.5,
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Description: "lunch",
		AccountID:   accountID,
		CategoryID:  2,
	}
}

func TestTransactionCreate(t *testing.T) {
	poolMock := newPoolMock(t)
	repo := NewTransactionRepository(poolMock)
	transaction := testTransaction(uuid.New())
	transaction.ID = 0

	poolMock.ExpectQuery("INSERT INTO transactions").
		WithArgs(transaction.Type, transaction.Amount, transaction.Date, transaction.Description, transaction.AccountID, transaction.CategoryID).
		WillReturnRows(pgxmock.NewRows([]string{"transaction_id"}).AddRow(int64(11)))

	require.NoError(t, repo.Create(context.Background(), transaction))
	assert.Equal(t, int64(11), transaction.ID)
}

func TestTransactionFindByIDNotFound(t *testing.T) {
	poolMock := newPoolMock(t)
	repo := NewTransactionRepository(poolMock)

	poolMock.ExpectQuery("FROM transactions").
		WithArgs(int64(5)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 5)
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
}

func TestTransactionFindForUser(t *testing.T) {
	accountID := uuid.New()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	categoryID := int64(2)

	testCases := []struct {
		name   string
		filter *schemas.TransactionFilter
		where  string
		args   []interface{}
	}{
		{
			name:   "UserOnly",
			filter: &schemas.TransactionFilter{AccountID: accountID, Limit: 10},
			where:  "WHERE (user_id = $1) ORDER BY",
			args:   []interface{}{accountID.String()},
		},
		{
			name:   "DateRange",
			filter: &schemas.TransactionFilter{AccountID: accountID, StartDate: &start, EndDate: &end, Limit: 10},
			where:  "WHERE (user_id = $1 AND transaction_date >= $2 AND transaction_date <= $3)",
			args:   []interface{}{accountID.String(), start, end},
		},
		{
			name:   "StartDateOnlyIsIgnored",
			filter: &schemas.TransactionFilter{AccountID: accountID, StartDate: &start, Limit: 10},
			where:  "WHERE (user_id = $1) ORDER BY",
			args:   []interface{}{accountID.String()},
		},
		{
			name:   "Category",
			filter: &schemas.TransactionFilter{AccountID: accountID, CategoryID: &categoryID, Limit: 10},
			where:  "WHERE (user_id = $1 AND category_id = $2)",
			args:   []interface{}{accountID.String(), categoryID},
		},
		{
			name:   "DateRangeAndCategory",
			filter: &schemas.TransactionFilter{AccountID: accountID, StartDate: &start, EndDate: &end, CategoryID: &categoryID, Offset: 20, Limit: 10},
			where:  "WHERE (user_id = $1 AND transaction_date >= $2 AND transaction_date <= $3 AND category_id = $4)",
			args:   []interface{}{accountID.String(), start, end, categoryID},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			poolMock := newPoolMock(t)
			repo := NewTransactionRepository(poolMock)

			poolMock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM transactions")).
				WithArgs(tc.args...).
				WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
			poolMock.ExpectQuery(regexp.QuoteMeta(tc.where)).
				WithArgs(tc.args...).
				WillReturnRows(transactionRows(testTransaction(accountID)))

			transactions, total, err := repo.FindForUser(context.Background(), tc.filter)
			require.NoError(t, err)
			assert.Equal(t, 1, total)
			require.Len(t, transactions, 1)
			assert.Equal(t, accountID, transactions[0].AccountID)
			assert.NoError(t, poolMock.ExpectationsWereMet())
		})
	}
}

func TestTransactionFindAllPaging(t *testing.T) {
	poolMock := newPoolMock(t)
	repo := NewTransactionRepository(poolMock)

	poolMock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM transactions")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	poolMock.ExpectQuery(regexp.QuoteMeta("ORDER BY transaction_date DESC, transaction_id DESC LIMIT 5 OFFSET 15")).
		WillReturnRows(transactionRows())

	transactions, total, err := repo.FindAll(context.Background(), 15, 5)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, transactions)
}

func TestTransactionUpdateAndDeleteMissing(t *testing.T) {
	poolMock := newPoolMock(t)
	repo := NewTransactionRepository(poolMock)
	transaction := testTransaction(uuid.New())

	poolMock.ExpectExec("UPDATE transactions").
		WithArgs(transaction.ID, transaction.Amount, transaction.Date, transaction.Description, transaction.CategoryID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	poolMock.ExpectExec("DELETE FROM transactions").
		WithArgs(transaction.ID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.Update(context.Background(), transaction), errs.ErrTransactionNotFound)
	assert.ErrorIs(t, repo.Delete(context.Background(), transaction.ID), errs.ErrTransactionNotFound)
}
