package contact

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/logger"
)

var (
	ErrNotConfigured = errors.New("SMTP credentials not configured")
	ErrInvalid       = errors.New("invalid contact message")
)

// Message is a contact form submission.
type Message struct {
	Name  string
	Email string
	Body  string
}

// Validate trims the fields and checks they are usable.
func (m *Message) Validate() error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Body = strings.TrimSpace(m.Body)

	switch {
	case m.Name == "" || len(m.Name) > 200:
		return fmt.Errorf("%w: name", ErrInvalid)
	case strings.ContainsAny(m.Name, "\r\n"):
		return fmt.Errorf("%w: name", ErrInvalid)
	case m.Body == "" || len(m.Body) > 5000:
		return fmt.Errorf("%w: message", ErrInvalid)
	}

	addr, err := mail.ParseAddress(m.Email)
	if err != nil || addr.Address != m.Email {
		return fmt.Errorf("%w: email", ErrInvalid)
	}
	return nil
}

// Mailer delivers contact messages.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends messages through an authenticated SMTP relay.
type SMTPMailer struct {
	cfg  config.ContactConfig
	log  *logger.Logger
	send sendFunc
}

func NewSMTPMailer(cfg config.ContactConfig, log *logger.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, log: log, send: smtp.SendMail}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !m.cfg.SMTPConfigured() {
		return ErrNotConfigured
	}

	// SMTP authentication
	auth := smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPass, m.cfg.SMTPHost)

	err := m.send(m.cfg.SMTPHost+":"+m.cfg.SMTPPort, auth, m.cfg.SMTPUser, []string{m.cfg.ToEmail}, m.compose(msg))
	if err != nil {
		m.log.Error(err, "sending contact email failed")
		return fmt.Errorf("send contact email: %w", err)
	}

	m.log.WithFields(map[string]any{"from": msg.Email}).Info("contact email sent")
	return nil
}

func (m *SMTPMailer) compose(msg Message) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", msg.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Body)

	return []byte("To: " + m.cfg.ToEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.cfg.SMTPUser + "\r\n" +
		"Reply-To: " + msg.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
