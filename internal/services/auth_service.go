package services

import (
	"context"
	"errors"

	"expense-tracker/internal/errs"
	"expense-tracker/internal/managers"
	"expense-tracker/internal/repositories"
	"expense-tracker/internal/schemas"
	"expense-tracker/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type AuthSvc interface {
	Login(ctx context.Context, request *schemas.LoginRequest) (*schemas.AuthenticationDTO, error)
}

type AuthService struct {
	accountRepo repositories.AccountRepo
	jwtMgr      managers.JWTMgr
}

func NewAuthService(accountRepo repositories.AccountRepo, jwtMgr managers.JWTMgr) AuthSvc {
	return &AuthService{accountRepo: accountRepo, jwtMgr: jwtMgr}
}

// Login checks the credentials and issues an access token. Unknown emails and wrong passwords
// are indistinguishable to the caller; accounts that were never confirmed are rejected.
func (s *AuthService) Login(ctx context.Context, request *schemas.LoginRequest) (*schemas.AuthenticationDTO, error) {
	account, err := s.accountRepo.FindByEmail(ctx, request.Username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(request.Password)); err != nil {
		utils.LogMessageWithFields(ctx, "info", "Login with wrong password for "+account.ID.String())
		return nil, errs.ErrInvalidCredentials
	}

	if !account.Enabled || account.Locked {
		return nil, errs.ErrAccountDisabled
	}

	token, err := s.jwtMgr.GenerateJWT(s.jwtMgr.GenerateClaims(account))
	if err != nil {
		return nil, err
	}

	return &schemas.AuthenticationDTO{
		Token: token,
		User:  schemas.NewUserDTO(account),
	}, nil
}
