package managers

import (
	"context"
	"errors"
	"testing"

	"expense-tracker/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	calls []sentMail
	err   error
}

type sentMail struct {
	from, to, subject, html string
}

func (s *recordingSender) Send(_ context.Context, from, to, subject, html string) error {
	s.calls = append(s.calls, sentMail{from, to, subject, html})
	return s.err
}

func TestSendConfirmationLinkMailInProduction(t *testing.T) {
	cfg := config.Defaults()
	cfg.Environment = "production"
	sender := &recordingSender{}
	mm := newMailManager(cfg, sender)

	link := "http://localhost:8080/api/v1/registration/confirm?token=abc"
	require.NoError(t, mm.SendConfirmationLinkMail(context.Background(), "john@example.com", link))

	require.Len(t, sender.calls, 1)
	assert.Equal(t, "john@example.com", sender.calls[0].to)
	assert.Equal(t, "Email confirmation", sender.calls[0].subject)
	assert.Equal(t, cfg.Mail.From, sender.calls[0].from)
	assert.Contains(t, sender.calls[0].html, link)
}

func TestSendConfirmationLinkMailSkipsOutsideProduction(t *testing.T) {
	cfg := config.Defaults()
	sender := &recordingSender{}
	mm := newMailManager(cfg, sender)

	require.NoError(t, mm.SendConfirmationLinkMail(context.Background(), "john@example.com", "http://x/confirm?token=abc"))
	assert.Empty(t, sender.calls)
}

func TestSendConfirmationLinkMailReturnsSenderError(t *testing.T) {
	cfg := config.Defaults()
	cfg.Environment = "production"
	sender := &recordingSender{err: errors.New("smtp down")}
	mm := newMailManager(cfg, sender)

	err := mm.SendConfirmationLinkMail(context.Background(), "john@example.com", "http://x/confirm?token=abc")
	assert.EqualError(t, err, "smtp down")
}

func TestNewMailSenderPicksProvider(t *testing.T) {
	cfg := config.Defaults()
	assert.IsType(t, &mailgunSender{}, newMailSender(cfg.Mail))

	cfg.Mail.Provider = "smtp"
	cfg.Mail.SMTPHost = "mail.example.com"
	sender := newMailSender(cfg.Mail)
	require.IsType(t, &smtpSender{}, sender)
	assert.Equal(t, "mail.example.com:587", sender.(*smtpSender).addr)
}
