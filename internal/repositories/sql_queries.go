package repositories

const (
	accountColumns = `user_id, email, password_hash, first_name, last_name, user_role, locked, enabled, created_at`

	insertAccount = `INSERT INTO users (user_id, email, password_hash, first_name, last_name, user_role, locked, enabled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	selectAccountByID = `SELECT ` + accountColumns + `
		FROM users
		WHERE user_id = $1`

	selectAccountByEmail = `SELECT ` + accountColumns + `
		FROM users
		WHERE lower(email) = lower($1)`

	existsAccountByEmail = `SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1))`

	existsAccountByID = `SELECT EXISTS(SELECT 1 FROM users WHERE user_id = $1)`

	enableAccount = `UPDATE users
		SET enabled = TRUE
		WHERE user_id = $1 AND enabled = FALSE`

	updateAccount = `UPDATE users
		SET email = $2, password_hash = $3, first_name = $4, last_name = $5
		WHERE user_id = $1`

	countAccounts = `SELECT COUNT(*) FROM users`

	selectAccounts = `SELECT ` + accountColumns + `
		FROM users
		ORDER BY created_at, user_id
		LIMIT $1 OFFSET $2`
)

const (
	insertToken = `INSERT INTO confirmation_tokens (token, user_id, created_at, expires_at, confirmed_at)
		VALUES ($1, $2, $3, $4, $5)`

	selectToken = `SELECT token, user_id, created_at, expires_at, confirmed_at
		FROM confirmation_tokens
		WHERE token = $1`

	// confirmToken only matches unconfirmed tokens, so a concurrent second confirmation affects no row.
	confirmToken = `UPDATE confirmation_tokens
		SET confirmed_at = $2
		WHERE token = $1 AND confirmed_at IS NULL`
)

const (
	insertCategory = `INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING category_id`

	selectCategoryByID = `SELECT category_id, name, description
		FROM categories
		WHERE category_id = $1`

	existsCategoryByName = `SELECT EXISTS(SELECT 1 FROM categories WHERE lower(name) = lower($1))`

	countCategories = `SELECT COUNT(*) FROM categories`

	selectCategories = `SELECT category_id, name, description
		FROM categories
		ORDER BY category_id
		LIMIT $1 OFFSET $2`

	updateCategory = `UPDATE categories
		SET name = $2, description = $3
		WHERE category_id = $1`

	deleteCategory = `DELETE FROM categories WHERE category_id = $1`
)

const (
	transactionsTable = "transactions"

	insertTransaction = `INSERT INTO transactions (transaction_type, amount, transaction_date, description, user_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING transaction_id`

	selectTransactionByID = `SELECT transaction_id, transaction_type, amount, transaction_date, description, user_id, category_id
		FROM transactions
		WHERE transaction_id = $1`

	updateTransaction = `UPDATE transactions
		SET amount = $2, transaction_date = $3, description = $4, category_id = $5
		WHERE transaction_id = $1`

	deleteTransaction = `DELETE FROM transactions WHERE transaction_id = $1`
)

var transactionColumns = []string{
	"transaction_id", "transaction_type", "amount", "transaction_date", "description", "user_id", "category_id",
}
