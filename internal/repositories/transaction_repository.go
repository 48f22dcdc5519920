package repositories

import (
	"context"
	"errors"

	"expense-tracker/internal/errs"
	"expense-tracker/internal/interfaces"
	"expense-tracker/internal/schemas"
	"expense-tracker/internal/utils"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type TransactionRepo interface {
	Create(ctx context.Context, transaction *schemas.Transaction) error
	FindByID(ctx context.Context, id int64) (*schemas.Transaction, error)
	FindAll(ctx context.Context, offset, limit int) ([]*schemas.Transaction, int, error)
	FindForUser(ctx context.Context, filter *schemas.TransactionFilter) ([]*schemas.Transaction, int, error)
	Update(ctx context.Context, transaction *schemas.Transaction) error
	Delete(ctx context.Context, id int64) error
}

type TransactionRepository struct {
	pool    interfaces.PgxPoolIface
	builder sq.StatementBuilderType
}

func NewTransactionRepository(pool interfaces.PgxPoolIface) TransactionRepo {
	return &TransactionRepository{
		pool:    pool,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create inserts transaction and sets its generated id.
func (r *TransactionRepository) Create(ctx context.Context, transaction *schemas.Transaction) error {
	return utils.QuerierFromContext(ctx, r.pool).QueryRow(ctx, insertTransaction,
		transaction.Type, transaction.Amount, transaction.Date, transaction.Description,
		transaction.AccountID, transaction.CategoryID).Scan(&transaction.ID)
}

func (r *TransactionRepository) FindByID(ctx context.Context, id int64) (*schemas.Transaction, error) {
	row := utils.QuerierFromContext(ctx, r.pool).QueryRow(ctx, selectTransactionByID, id)
	transaction, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrTransactionNotFound
		}
		return nil, err
	}

	return transaction, nil
}

// FindAll returns one page of all transactions, newest first.
func (r *TransactionRepository) FindAll(ctx context.Context, offset, limit int) ([]*schemas.Transaction, int, error) {
	return r.findPage(ctx, nil, offset, limit)
}

// FindForUser returns one page of the user's transactions. The date range only applies
// when both bounds are set; the category filter applies on its own.
func (r *TransactionRepository) FindForUser(ctx context.Context, filter *schemas.TransactionFilter) ([]*schemas.Transaction, int, error) {
	where := sq.And{sq.Eq{"user_id": filter.AccountID.String()}}
	if filter.StartDate != nil && filter.EndDate != nil {
		where = append(where,
			sq.GtOrEq{"transaction_date": *filter.StartDate},
			sq.LtOrEq{"transaction_date": *filter.EndDate})
	}
	if filter.CategoryID != nil {
		where = append(where, sq.Eq{"category_id": *filter.CategoryID})
	}

	return r.findPage(ctx, where, filter.Offset, filter.Limit)
}

func (r *TransactionRepository) findPage(ctx context.Context, where sq.Sqlizer, offset, limit int) ([]*schemas.Transaction, int, error) {
	countQuery := r.builder.Select("COUNT(*)").From(transactionsTable)
	listQuery := r.builder.Select(transactionColumns...).From(transactionsTable).
		OrderBy("transaction_date DESC", "transaction_id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	if where != nil {
		countQuery = countQuery.Where(where)
		listQuery = listQuery.Where(where)
	}

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, err
	}
	listSQL, listArgs, err := listQuery.ToSql()
	if err != nil {
		return nil, 0, err
	}

	querier := utils.QuerierFromContext(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := querier.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	transactions := make([]*schemas.Transaction, 0, limit)
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, err
		}
		transactions = append(transactions, transaction)
	}

	return transactions, total, rows.Err()
}

// Update stores the mutable fields of transaction. Its type and owner never change.
func (r *TransactionRepository) Update(ctx context.Context, transaction *schemas.Transaction) error {
	tag, err := utils.QuerierFromContext(ctx, r.pool).Exec(ctx, updateTransaction,
		transaction.ID, transaction.Amount, transaction.Date, transaction.Description, transaction.CategoryID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrTransactionNotFound
	}

	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := utils.QuerierFromContext(ctx, r.pool).Exec(ctx, deleteTransaction, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrTransactionNotFound
	}

	return nil
}

func scanTransaction(row pgx.Row) (*schemas.Transaction, error) {
	transaction := &schemas.Transaction{}
	err := row.Scan(&transaction.ID, &transaction.Type, &transaction.Amount, &transaction.Date,
		&transaction.Description, &transaction.AccountID, &transaction.CategoryID)
	if err != nil {
		return nil, err
	}
	return transaction, nil
}
