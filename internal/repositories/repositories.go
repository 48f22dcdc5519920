package repositories

import "expense-tracker/internal/interfaces"

// Repositories bundles the stores backed by one connection pool.
type Repositories struct {
	Accounts     AccountRepo
	Tokens       TokenRepo
	Categories   CategoryRepo
	Transactions TransactionRepo
}

func NewRepositories(pool interfaces.PgxPoolIface) *Repositories {
	return &Repositories{
		Accounts:     NewAccountRepository(pool),
		Tokens:       NewTokenRepository(pool),
		Categories:   NewCategoryRepository(pool),
		Transactions: NewTransactionRepository(pool),
	}
}
