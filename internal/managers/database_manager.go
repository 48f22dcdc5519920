// package managers handles the business logic and orchestrates interactions between the application and the database.
package managers

import (
	"context"

	"expense-tracker/internal/interfaces"
	"expense-tracker/internal/utils"

	log "github.com/sirupsen/logrus"
)

// DatabaseMgr defines the interface for database management.
// It provides the connection pool and runs units of work inside a single transaction.
type DatabaseMgr interface {
	GetPool() interfaces.PgxPoolIface
	RunInTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}

// DatabaseManager is responsible for managing the database connection pool.
// It implements the DatabaseMgr interface and provides methods to interact with the database.
type DatabaseManager struct {
	Pool interfaces.PgxPoolIface
}

// GetPool returns the database connection pool managed by the DatabaseManager.
// This pool is used for executing database operations.
func (dbMgr *DatabaseManager) GetPool() interfaces.PgxPoolIface {
	return dbMgr.Pool
}

// RunInTransaction runs fn inside one database transaction. Repositories called with txCtx
// join the transaction; it is committed when fn returns nil and rolled back otherwise.
func (dbMgr *DatabaseManager) RunInTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	return utils.RunInTransaction(ctx, dbMgr.Pool, fn)
}

// NewDatabaseManager creates and initializes a new instance of DatabaseManager with the provided database connection pool.
// It logs the initialization process and returns the newly created DatabaseManager.
func NewDatabaseManager(pool interfaces.PgxPoolIface) DatabaseMgr {
	log.Info("Initializing database manager")
	return &DatabaseManager{Pool: pool}
}
