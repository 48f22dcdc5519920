package services

import (
	"time"

	"expense-tracker/internal/config"
	"expense-tracker/internal/utils"
)

// RegistrationOptions is the configuration of the registration workflow.
type RegistrationOptions struct {
	// BaseURL of the registration resource; links are BaseURL + "/confirm?token=" + token.
	BaseURL string
	// TokenValidity is the lifetime of every issued confirmation token.
	TokenValidity time.Duration
	// VerifyEmailDomain enables the MX lookup after the syntax check.
	VerifyEmailDomain bool
	// Now is the clock used for issue, expiry and confirmation times.
	Now func() time.Time
	// VerifyEmail reports whether the domain of an address accepts mail.
	VerifyEmail func(email string) bool
}

// NewRegistrationOptions builds the options from the loaded configuration using the wall clock.
func NewRegistrationOptions(cfg *config.Config) RegistrationOptions {
	return RegistrationOptions{
		BaseURL:           cfg.Registration.BaseURL,
		TokenValidity:     cfg.Registration.TokenValidity,
		VerifyEmailDomain: cfg.Registration.VerifyEmailDomain,
		Now:               time.Now,
		VerifyEmail:       utils.GetValidator().VerifyEmail,
	}
}

func (o RegistrationOptions) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// ConfirmationLink builds the link mailed to the owner of token.
func (o RegistrationOptions) ConfirmationLink(token string) string {
	return o.BaseURL + "/confirm?token=" + token
}
