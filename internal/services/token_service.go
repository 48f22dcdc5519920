package services

import (
	"context"

	"expense-tracker/internal/repositories"
	"expense-tracker/internal/schemas"
	"expense-tracker/internal/utils"

	"github.com/google/uuid"
)

// TokenSvc issues and confirms confirmation tokens.
type TokenSvc interface {
	GenerateToken(ctx context.Context, account *schemas.Account) (string, error)
	FindToken(ctx context.Context, token string) (*schemas.ConfirmationToken, error)
	ConfirmToken(ctx context.Context, token string) error
}

type TokenService struct {
	tokenRepo repositories.TokenRepo
	options   RegistrationOptions
}

func NewTokenService(tokenRepo repositories.TokenRepo, options RegistrationOptions) TokenSvc {
	return &TokenService{tokenRepo: tokenRepo, options: options}
}

// GenerateToken persists a new unconfirmed token for account and returns its string.
// The string is a random (version 4) UUID.
func (s *TokenService) GenerateToken(ctx context.Context, account *schemas.Account) (string, error) {
	now := s.options.now()
	token := &schemas.ConfirmationToken{
		Token:     uuid.New().String(),
		AccountID: account.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.options.TokenValidity),
	}

	if err := s.tokenRepo.Save(ctx, token); err != nil {
		return "", err
	}

	utils.LogMessageWithFields(ctx, "debug", "Issued confirmation token for "+account.ID.String())
	return token.Token, nil
}

func (s *TokenService) FindToken(ctx context.Context, token string) (*schemas.ConfirmationToken, error) {
	return s.tokenRepo.FindByToken(ctx, token)
}

// ConfirmToken sets the confirmation time of token to now. It fails with ErrTokenAlreadyConfirmed
// when the token was confirmed before, also when that happened concurrently.
func (s *TokenService) ConfirmToken(ctx context.Context, token string) error {
	return s.tokenRepo.Confirm(ctx, token, s.options.now())
}
