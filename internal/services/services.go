// Package services holds the business rules. Services talk to the stores through the
// repositories and to the outside world through the managers.
package services

import (
	"expense-tracker/internal/managers"
	"expense-tracker/internal/repositories"
)

type Services struct {
	Registration RegistrationSvc
	Users        UserSvc
	Tokens       TokenSvc
	Auth         AuthSvc
	Categories   CategorySvc
	Transactions TransactionSvc
}

func NewServices(repos *repositories.Repositories, databaseMgr managers.DatabaseMgr, jwtMgr managers.JWTMgr,
	queueMgr managers.QueueMgr, options RegistrationOptions) *Services {
	userService := NewUserService(repos.Accounts, options)
	tokenService := NewTokenService(repos.Tokens, options)

	return &Services{
		Registration: NewRegistrationService(databaseMgr, queueMgr, userService, tokenService, options),
		Users:        userService,
		Tokens:       tokenService,
		Auth:         NewAuthService(repos.Accounts, jwtMgr),
		Categories:   NewCategoryService(repos.Categories),
		Transactions: NewTransactionService(databaseMgr, repos.Transactions, repos.Categories, userService),
	}
}
