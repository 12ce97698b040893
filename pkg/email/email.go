package email

import (
	"fmt"
	"net/smtp"
	"os"
)

// Sender delivers plain text mail over SMTP. A zero-configured sender is
// disabled and silently skips sends.
type Sender struct {
	From     string
	Password string
	Host     string
	Port     string
}

// NewSenderFromEnv reads SMTP settings from the environment.
func NewSenderFromEnv() *Sender {
	return &Sender{
		From:     os.Getenv("SMTP_SENDER"),
		Password: os.Getenv("SMTP_PASSWORD"),
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
	}
}

// Enabled reports whether SMTP is configured.
func (s *Sender) Enabled() bool {
	return s != nil && s.From != "" && s.Host != "" && s.Port != ""
}

// Send delivers a plain text email. No-op when the sender is disabled.
func (s *Sender) Send(to, subject, body string) error {
	if !s.Enabled() {
		return nil
	}

	auth := smtp.PlainAuth("", s.From, s.Password, s.Host)

	msg := []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + body + "\r\n")

	address := s.Host + ":" + s.Port

	if err := smtp.SendMail(address, auth, s.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}
