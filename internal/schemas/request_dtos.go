// Package schemas defines the request structures for various operations in the application.
package schemas

// RegistrationRequest is a struct that represents a registration request
// Email is required and never sanitised; its syntax is checked by the registration workflow, which answers with a soft result
// Password is required and must be between 8 and 72 characters (bcrypt limit)
type RegistrationRequest struct {
	FirstName string `json:"firstName" validate:"max=64"`
	LastName  string `json:"lastName" validate:"max=64"`
	Email     string `json:"email" validate:"required,max=254" sanitize:"-"`
	Password  string `json:"password" validate:"required,min=8,max=72" sanitize:"-"`
}

// RegenerateTokenRequest is a struct that represents a request for a new confirmation link
type RegenerateTokenRequest struct {
	Email string `json:"email" validate:"required,email_syntax" sanitize:"-"`
}

// LoginRequest is a struct that represents a login request
// Username is the email address of the account
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=254" sanitize:"-"`
	Password string `json:"password" validate:"required,max=72" sanitize:"-"`
}

// UserUpdateRequest is a struct that represents an update of a user's profile
// All fields are required; a request that changes nothing is rejected
type UserUpdateRequest struct {
	FirstName string `json:"firstName" validate:"max=64"`
	LastName  string `json:"lastName" validate:"max=64"`
	Email     string `json:"email" validate:"required,email_syntax" sanitize:"-"`
	Password  string `json:"password" validate:"required,min=8,max=72" sanitize:"-"`
}

// CategoryRequest is a struct that represents a create or update category request
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=64"`
	Description string `json:"description" validate:"max=256"`
}

// TransactionRequest is a struct that represents a create or update transaction request
// DateAt is an ISO date (2006-01-02)
type TransactionRequest struct {
	Type        string  `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	DateAt      string  `json:"dateAt" validate:"required,datetime=2006-01-02"`
	Description string  `json:"description" validate:"max=256"`
	UserID      string  `json:"userId" validate:"required,uuid"`
	CategoryID  int64   `json:"categoryId" validate:"required,gt=0"`
}
