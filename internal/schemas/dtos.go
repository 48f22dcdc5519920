package schemas

import (
	"time"

	"github.com/google/uuid"
)

// ErrorDTO is a struct that represents an error response
// Error is the custom error, see CustomError
type ErrorDTO struct {
	Error CustomError `json:"error"`
}

// MetadataDTO is a struct that represents the response of the version route
type MetadataDTO struct {
	ApiVersion string `json:"apiVersion"`
	ApiName    string `json:"apiName"`
}

// RegistrationStatus tells the outcomes of the registration workflow apart.
// It is not serialised; handlers use it to pick the status code.
type RegistrationStatus int

const (
	RegistrationSucceeded RegistrationStatus = iota
	RegistrationInvalidEmail
	RegistrationEmailUnreachable
	RegistrationAlreadyConfirmed
	RegistrationTokenExpired
)

// RegistrationResponse is a struct that represents the soft outcome of a registration workflow step
// Message is a human-readable description of the outcome
// Success reports whether the step went through
type RegistrationResponse struct {
	Message string             `json:"message"`
	Success bool               `json:"success"`
	Status  RegistrationStatus `json:"-"`
}

// UserDTO is a struct that represents a user response
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	Enabled   bool      `json:"enabled"`
}

// NewUserDTO maps an account to its public representation.
func NewUserDTO(account *Account) *UserDTO {
	return &UserDTO{
		ID:        account.ID,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
		Roles:     []string{account.Role},
		Enabled:   account.Enabled,
	}
}

// AuthenticationDTO is a struct that represents a successful login
// Token is the JWT used for authorization
type AuthenticationDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}

// CategoryDTO is a struct that represents a category response
type CategoryDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TransactionDTO is a struct that represents a transaction response
// Date is formatted as an ISO date
type TransactionDTO struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Date        string    `json:"date"`
	Description string    `json:"description,omitempty"`
	UserID      uuid.UUID `json:"userId"`
	CategoryID  int64     `json:"categoryId"`
}

// DateLayout is the ISO date format used on the wire for transaction dates.
const DateLayout = time.DateOnly

// NewTransactionDTO maps a transaction to its public representation.
func NewTransactionDTO(transaction *Transaction) *TransactionDTO {
	return &TransactionDTO{
		ID:          transaction.ID,
		Type:        transaction.Type,
		Amount:      transaction.Amount,
		Date:        transaction.Date.Format(DateLayout),
		Description: transaction.Description,
		UserID:      transaction.AccountID,
		CategoryID:  transaction.CategoryID,
	}
}

// MailParams is the message placed on the registration-mail queue
type MailParams struct {
	EmailTo string `json:"emailTo"`
	Link    string `json:"link"`
}

type PaginatedResponse struct {
	Records    interface{} `json:"records"`
	Pagination Pagination  `json:"pagination"`
}

type Pagination struct {
	Offset  int `json:"offset"`
	Limit   int `json:"limit"`
	Records int `json:"records"`
}
