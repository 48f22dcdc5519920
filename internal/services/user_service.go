package services

import (
	"context"
	"fmt"
	"strings"

	"expense-tracker/internal/errs"
	"expense-tracker/internal/repositories"
	"expense-tracker/internal/schemas"
	"expense-tracker/internal/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserSvc interface {
	CreateUser(ctx context.Context, request *schemas.RegistrationRequest) (*schemas.Account, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*schemas.Account, error)
	GetUserByEmail(ctx context.Context, email string) (*schemas.Account, error)
	GetUsers(ctx context.Context, offset, limit int) ([]*schemas.Account, int, error)
	UpdateUser(ctx context.Context, id uuid.UUID, request *schemas.UserUpdateRequest) (*schemas.Account, error)
	EnableUser(ctx context.Context, account *schemas.Account) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type UserService struct {
	accountRepo repositories.AccountRepo
	options     RegistrationOptions
}

func NewUserService(accountRepo repositories.AccountRepo, options RegistrationOptions) UserSvc {
	return &UserService{accountRepo: accountRepo, options: options}
}

// CreateUser stores a new disabled account with a bcrypt hash of the password.
func (s *UserService) CreateUser(ctx context.Context, request *schemas.RegistrationRequest) (*schemas.Account, error) {
	exists, err := s.accountRepo.ExistsByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account := &schemas.Account{
		ID:           uuid.New(),
		Email:        request.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Role:         schemas.DefaultRole,
		CreatedAt:    s.options.now(),
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	utils.LogMessageWithFields(ctx, "info", "Created account "+account.ID.String())
	return account, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*schemas.Account, error) {
	return s.accountRepo.FindByID(ctx, id)
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*schemas.Account, error) {
	return s.accountRepo.FindByEmail(ctx, email)
}

func (s *UserService) GetUsers(ctx context.Context, offset, limit int) ([]*schemas.Account, int, error) {
	return s.accountRepo.FindAll(ctx, offset, limit)
}

func (s *UserService) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.accountRepo.ExistsByID(ctx, id)
}

// EnableUser enables a disabled account. Enabling an enabled account means the stored
// state is inconsistent and fails with ErrUserAlreadyEnabled.
func (s *UserService) EnableUser(ctx context.Context, account *schemas.Account) error {
	if account.Enabled {
		return fmt.Errorf("enable account %s: %w", account.ID, errs.ErrUserAlreadyEnabled)
	}
	if err := s.accountRepo.Enable(ctx, account.ID); err != nil {
		return err
	}

	account.Enabled = true
	utils.LogMessageWithFields(ctx, "info", "Enabled account "+account.ID.String())
	return nil
}

// UpdateUser applies the profile changes in request. A changed email must not belong to another
// account; the password is only re-hashed when it differs. A request that changes nothing fails with ErrNoChanges.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, request *schemas.UserUpdateRequest) (*schemas.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false
	if request.FirstName != account.FirstName {
		account.FirstName = request.FirstName
		changed = true
	}
	if request.LastName != account.LastName {
		account.LastName = request.LastName
		changed = true
	}
	if request.Email != account.Email {
		if !strings.EqualFold(request.Email, account.Email) {
			exists, err := s.accountRepo.ExistsByEmail(ctx, request.Email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, errs.ErrEmailTaken
			}
		}
		account.Email = request.Email
		changed = true
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(request.Password)) != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		account.PasswordHash = string(hashedPassword)
		changed = true
	}

	if !changed {
		return nil, errs.ErrNoChanges
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}
