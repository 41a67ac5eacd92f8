package contact

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/pinecoastbbq/pinecoast/internal/config"
)

// sendFunc matches smtp.SendMail.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer emails each submission to the restaurant's inbox.
type SMTPMailer struct {
	cfg  config.MailConfig
	send sendFunc
}

// NewSMTPMailer creates a mailer that authenticates with PLAIN auth. The
// username defaults to the sender address.
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail}
}

// Notify emails the submission to the configured recipient.
func (m *SMTPMailer) Notify(ctx context.Context, s Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	user := m.cfg.Username
	if user == "" {
		user = m.cfg.From
	}
	auth := smtp.PlainAuth("", user, m.cfg.Password, m.cfg.Host)
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))

	if err := m.send(addr, auth, m.cfg.From, []string{m.cfg.To}, m.message(s)); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	return nil
}

// message builds the email for a submission. Header values are stripped of
// line breaks so form input cannot inject headers.
func (m *SMTPMailer) message(s Submission) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", headerSafe(m.cfg.From))
	fmt.Fprintf(&b, "To: %s\r\n", headerSafe(m.cfg.To))
	fmt.Fprintf(&b, "Reply-To: %s\r\n", headerSafe(s.Form.Email))
	b.WriteString("Subject: New Contact Form Submission from Pine Coast BBQ\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString("You have a new message from your website:\n\n")
	fmt.Fprintf(&b, "Name: %s\n\n", s.Form.Name)
	fmt.Fprintf(&b, "Email: %s\n\n", s.Form.Email)
	fmt.Fprintf(&b, "Message:\n%s\n", s.Form.Message)
	return []byte(b.String())
}

func headerSafe(v string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(v)
}
