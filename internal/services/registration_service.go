package services

import (
	"context"
	"fmt"

	"expense-tracker/internal/errs"
	"expense-tracker/internal/managers"
	"expense-tracker/internal/schemas"
	"expense-tracker/internal/utils"
)

const (
	registeredMessage       = "User registered. Please check your email for confirmation and account activation"
	confirmedMessage        = "Confirmed"
	alreadyConfirmedMessage = "Email already confirmed"
	tokenExpiredMessage     = "Token has expired. You can request a new confirmation link by clicking the 'Resend Confirmation Email' button."
	regeneratedMessage      = "A new confirmation link has been sent to your email"
	invalidEmailMessage     = "Invalid email address: "
	unreachableEmailMessage = "Email address is unreachable: "
)

// RegistrationSvc runs the registration workflow. Expected business outcomes come back as a
// RegistrationResponse; unknown identifiers and broken invariants come back as errors.
type RegistrationSvc interface {
	Register(ctx context.Context, request *schemas.RegistrationRequest) (*schemas.RegistrationResponse, error)
	Confirm(ctx context.Context, token string) (*schemas.RegistrationResponse, error)
	Regenerate(ctx context.Context, email string) (*schemas.RegistrationResponse, error)
}

type RegistrationService struct {
	databaseMgr  managers.DatabaseMgr
	queueMgr     managers.QueueMgr
	userService  UserSvc
	tokenService TokenSvc
	options      RegistrationOptions
}

func NewRegistrationService(databaseMgr managers.DatabaseMgr, queueMgr managers.QueueMgr, userService UserSvc,
	tokenService TokenSvc, options RegistrationOptions) RegistrationSvc {
	return &RegistrationService{
		databaseMgr:  databaseMgr,
		queueMgr:     queueMgr,
		userService:  userService,
		tokenService: tokenService,
		options:      options,
	}
}

// Register creates a disabled account and its first token in one transaction, then queues the
// confirmation mail. An email failing the syntax check creates nothing.
func (s *RegistrationService) Register(ctx context.Context, request *schemas.RegistrationRequest) (*schemas.RegistrationResponse, error) {
	if !utils.IsValidEmail(request.Email) {
		utils.LogMessageWithFields(ctx, "info", "Rejected registration with invalid email")
		return &schemas.RegistrationResponse{
			Message: invalidEmailMessage + request.Email,
			Status:  schemas.RegistrationInvalidEmail,
		}, nil
	}

	if s.options.VerifyEmailDomain && s.options.VerifyEmail != nil && !s.options.VerifyEmail(request.Email) {
		utils.LogMessageWithFields(ctx, "info", "Rejected registration with unreachable email")
		return &schemas.RegistrationResponse{
			Message: unreachableEmailMessage + request.Email,
			Status:  schemas.RegistrationEmailUnreachable,
		}, nil
	}

	var token string
	err := s.databaseMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		account, err := s.userService.CreateUser(txCtx, request)
		if err != nil {
			return err
		}

		token, err = s.tokenService.GenerateToken(txCtx, account)
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := s.dispatch(ctx, request.Email, token); err != nil {
		return nil, err
	}

	return &schemas.RegistrationResponse{
		Message: registeredMessage,
		Success: true,
		Status:  schemas.RegistrationSucceeded,
	}, nil
}

// Confirm confirms token and enables its account in one transaction. Confirmed and expired tokens
// are reported without touching any state.
func (s *RegistrationService) Confirm(ctx context.Context, token string) (*schemas.RegistrationResponse, error) {
	var response *schemas.RegistrationResponse

	err := s.databaseMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		confirmationToken, err := s.tokenService.FindToken(txCtx, token)
		if err != nil {
			return err
		}

		if confirmationToken.ConfirmedAt != nil {
			response = &schemas.RegistrationResponse{
				Message: alreadyConfirmedMessage,
				Status:  schemas.RegistrationAlreadyConfirmed,
			}
			return nil
		}

		if !s.options.now().Before(confirmationToken.ExpiresAt) {
			response = &schemas.RegistrationResponse{
				Message: tokenExpiredMessage,
				Status:  schemas.RegistrationTokenExpired,
			}
			return nil
		}

		if err := s.tokenService.ConfirmToken(txCtx, token); err != nil {
			return err
		}

		account, err := s.userService.GetUserByID(txCtx, confirmationToken.AccountID)
		if err != nil {
			return err
		}

		if err := s.userService.EnableUser(txCtx, account); err != nil {
			utils.LogMessageWithFieldsAndError(txCtx, "error", "Confirmed token belongs to an enabled account", err)
			return err
		}

		response = &schemas.RegistrationResponse{
			Message: confirmedMessage,
			Success: true,
			Status:  schemas.RegistrationSucceeded,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

// Regenerate issues another token for the account behind email and queues a new mail to the
// stored address. Earlier tokens stay valid until they expire.
func (s *RegistrationService) Regenerate(ctx context.Context, email string) (*schemas.RegistrationResponse, error) {
	var (
		account *schemas.Account
		token   string
	)
	err := s.databaseMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		account, err = s.userService.GetUserByEmail(txCtx, email)
		if err != nil {
			return err
		}

		token, err = s.tokenService.GenerateToken(txCtx, account)
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := s.dispatch(ctx, account.Email, token); err != nil {
		return nil, err
	}

	return &schemas.RegistrationResponse{
		Message: regeneratedMessage,
		Success: true,
		Status:  schemas.RegistrationSucceeded,
	}, nil
}

// dispatch queues the confirmation mail. The account and token are already committed when it fails.
func (s *RegistrationService) dispatch(ctx context.Context, email, token string) error {
	params := &schemas.MailParams{
		EmailTo: email,
		Link:    s.options.ConfirmationLink(token),
	}

	if err := s.queueMgr.PublishMail(ctx, params); err != nil {
		utils.LogMessageWithFieldsAndError(ctx, "error", "Error queueing confirmation mail", err)
		return fmt.Errorf("%w: %w", errs.ErrDispatchFailed, err)
	}

	utils.LogMessageWithFields(ctx, "info", "Queued confirmation mail")
	return nil
}
