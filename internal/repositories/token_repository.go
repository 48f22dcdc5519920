package repositories

import (
	"context"
	"errors"
	"time"

	"expense-tracker/internal/errs"
	"expense-tracker/internal/interfaces"
	"expense-tracker/internal/schemas"
	"expense-tracker/internal/utils"

	"github.com/jackc/pgx/v5"
)

// TokenRepo is the confirmation token store. Tokens are never deleted.
type TokenRepo interface {
	Save(ctx context.Context, token *schemas.ConfirmationToken) error
	FindByToken(ctx context.Context, token string) (*schemas.ConfirmationToken, error)
	Confirm(ctx context.Context, token string, confirmedAt time.Time) error
}

type TokenRepository struct {
	pool interfaces.PgxPoolIface
}

func NewTokenRepository(pool interfaces.PgxPoolIface) TokenRepo {
	return &TokenRepository{pool: pool}
}

func (r *TokenRepository) Save(ctx context.Context, token *schemas.ConfirmationToken) error {
	_, err := utils.QuerierFromContext(ctx, r.pool).Exec(ctx, insertToken,
		token.Token, token.AccountID, token.CreatedAt, token.ExpiresAt, token.ConfirmedAt)
	if err != nil {
		utils.LogMessageWithFieldsAndError(ctx, "error", "Error inserting confirmation token", err)
	}
	return err
}

func (r *TokenRepository) FindByToken(ctx context.Context, token string) (*schemas.ConfirmationToken, error) {
	found := &schemas.ConfirmationToken{}
	err := utils.QuerierFromContext(ctx, r.pool).QueryRow(ctx, selectToken, token).
		Scan(&found.Token, &found.AccountID, &found.CreatedAt, &found.ExpiresAt, &found.ConfirmedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrTokenNotFound
		}
		return nil, err
	}

	return found, nil
}

// Confirm sets confirmed_at if and only if it is still unset. When nothing was updated the token
// is either unknown or already confirmed; the former is distinguished by a lookup.
func (r *TokenRepository) Confirm(ctx context.Context, token string, confirmedAt time.Time) error {
	tag, err := utils.QuerierFromContext(ctx, r.pool).Exec(ctx, confirmToken, token, confirmedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	if _, err := r.FindByToken(ctx, token); err != nil {
		return err
	}
	return errs.ErrTokenAlreadyConfirmed
}
