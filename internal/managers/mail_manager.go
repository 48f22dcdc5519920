// Package managers handles the sending of confirmation emails using Mailgun or plain SMTP
// and the Hermes package for email formatting.
package managers

import (
	"context"
	"fmt"
	"net/smtp"
	"strconv"
	"time"

	"expense-tracker/internal/config"

	"github.com/jordan-wright/email"
	"github.com/mailgun/mailgun-go/v4"
	"github.com/matcornic/hermes/v2"
	log "github.com/sirupsen/logrus"
)

// MailMgr is an interface that outlines the contract for email management.
type MailMgr interface {
	SendConfirmationLinkMail(ctx context.Context, emailTo, link string) error
}

// mailSender delivers an already rendered HTML mail.
type mailSender interface {
	Send(ctx context.Context, from, to, subject, html string) error
}

// MailManager is a concrete implementation of the MailMgr interface.
// It renders mails with Hermes and hands them to the configured provider.
type MailManager struct {
	Hermes      *hermes.Hermes
	sender      mailSender
	from        string
	subject     string
	environment string
}

// SendConfirmationLinkMail sends the mail carrying the account confirmation link.
// Outside production the mail is rendered but not delivered.
func (mm *MailManager) SendConfirmationLinkMail(ctx context.Context, emailTo, link string) error {
	emailBody, err := mm.renderConfirmationMail(link)
	if err != nil {
		return err
	}

	if mm.environment != "production" {
		log.Info("Skipping confirmation mail in development mode")
		log.Debug("Confirmation link for ", emailTo, ": ", link)
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := mm.sender.Send(ctx, mm.from, emailTo, mm.subject, emailBody); err != nil {
		log.Warning("Error sending confirmation mail: " + err.Error())
		return err
	}
	log.Debug("Confirmation mail sent to ", emailTo)

	return nil
}

func (mm *MailManager) renderConfirmationMail(link string) (string, error) {
	mailBody := hermes.Email{
		Body: hermes.Body{
			Intros: []string{
				fmt.Sprintf("Welcome to %s! Please confirm your email address to activate your account.", mm.Hermes.Product.Name),
			},
			Actions: []hermes.Action{
				{
					Instructions: "Click the button below to confirm your registration:",
					Button: hermes.Button{
						Color: "#22BC66",
						Text:  "Confirm your account",
						Link:  link,
					},
				},
			},
			Outros: []string{
				"The link expires shortly. If it did, request a new one from the login page.",
				"If you did not create an account, no further action is required.",
			},
		},
	}

	return mm.Hermes.GenerateHTML(mailBody)
}

type mailgunSender struct {
	mailgun mailgun.Mailgun
}

func (s *mailgunSender) Send(ctx context.Context, from, to, subject, html string) error {
	message := s.mailgun.NewMessage(from, subject, "", to)
	message.SetHtml(html)
	_, _, err := s.mailgun.Send(ctx, message)
	return err
}

type smtpSender struct {
	addr string
	auth smtp.Auth
}

func (s *smtpSender) Send(_ context.Context, from, to, subject, html string) error {
	e := email.NewEmail()
	e.From = from
	e.To = []string{to}
	e.Subject = subject
	e.HTML = []byte(html)
	return e.Send(s.addr, s.auth)
}

func newMailSender(cfg config.Mail) mailSender {
	if cfg.Provider == "smtp" {
		return &smtpSender{
			addr: cfg.SMTPHost + ":" + strconv.Itoa(cfg.SMTPPort),
			auth: smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost),
		}
	}

	mailgunInstance := mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey)
	mailgunInstance.SetAPIBase(mailgun.APIBaseEU)
	return &mailgunSender{mailgun: mailgunInstance}
}

// NewMailManager initializes a new MailManager instance with the configured provider and Hermes settings.
// The runtime environment decides whether mails are delivered at all.
func NewMailManager(cfg *config.Config) MailMgr {
	log.Info("Initializing mail manager")
	return newMailManager(cfg, newMailSender(cfg.Mail))
}

func newMailManager(cfg *config.Config, sender mailSender) *MailManager {
	if cfg.Environment != "production" {
		log.Println("Running in development mode, email will not be sent to users")
	}

	mm := &MailManager{
		Hermes: &hermes.Hermes{
			Theme:         new(hermes.Default),
			TextDirection: hermes.TDLeftToRight,
			Product: hermes.Product{
				Name:        cfg.Mail.ProductName,
				Link:        cfg.Mail.ProductLink,
				Copyright:   "© " + cfg.Mail.ProductName,
				TroubleText: "If you’re having trouble with the button '{ACTION}', copy and paste the URL below into your web browser.",
			},
		},
		sender:      sender,
		from:        cfg.Mail.From,
		subject:     cfg.Mail.Subject,
		environment: cfg.Environment,
	}
	log.Info("Initialized mail manager")
	return mm
}
