// Package schemas defines the data structures
package schemas

import (
	"time"

	"github.com/google/uuid"
)

// DefaultRole is assigned to every account created through registration.
const DefaultRole = "USER_ROLE"

// Transaction types.
const (
	TransactionTypeIncome  = "INCOME"
	TransactionTypeExpense = "EXPENSE"
)

// Account represents a registered user in the system.
type Account struct {
	ID           uuid.UUID `json:"id"`            // Unique identifier for the user.
	Email        string    `json:"email"`         // Email address, unique regardless of case.
	PasswordHash string    `json:"password_hash"` // Bcrypt hash of the password.
	FirstName    string    `json:"first_name"`    // First name of the user.
	LastName     string    `json:"last_name"`     // Last name of the user.
	Role         string    `json:"role"`          // Role granted to the user.
	Locked       bool      `json:"locked"`        // Whether the account is locked.
	Enabled      bool      `json:"enabled"`       // Whether the email was confirmed.
	CreatedAt    time.Time `json:"created_at"`    // Timestamp when the user was created.
}

// ConfirmationToken is a single-use, time-boxed credential proving control of an email address.
type ConfirmationToken struct {
	Token       string     `json:"token"`        // Random token string.
	AccountID   uuid.UUID  `json:"user_id"`      // Identifier of the owning user.
	CreatedAt   time.Time  `json:"created_at"`   // Timestamp when the token was issued.
	ExpiresAt   time.Time  `json:"expires_at"`   // Timestamp after which the token can no longer be confirmed.
	ConfirmedAt *time.Time `json:"confirmed_at"` // Timestamp of the confirmation, nil while unconfirmed.
}

// Category groups transactions.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Transaction is a single income or expense booked by a user.
type Transaction struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	AccountID   uuid.UUID `json:"user_id"`
	CategoryID  int64     `json:"category_id"`
}

// TransactionFilter narrows the transactions of one user. The date range only
// applies when both bounds are set.
type TransactionFilter struct {
	AccountID  uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *int64
	Offset     int
	Limit      int
}
