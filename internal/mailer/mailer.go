package mailer

import (
	"context"
	"fmt"

	"github.com/skillswap-in/skillswap-server/internal/logger"
	"gopkg.in/gomail.v2"
)

// SMTPMailer delivers password reset mail through an SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// New creates an SMTPMailer for the given relay.
func New(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// SendPasswordReset mails the reset link to the given address.
// The context is accepted for interface symmetry; gomail dials
// synchronously without cancellation support.
func (m *SMTPMailer) SendPasswordReset(ctx context.Context, toEmail, resetLink string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, "SkillSwap")
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "SkillSwap Password Reset")
	msg.SetBody("text/html", resetBody(resetLink))

	if err := m.dialer.DialAndSend(msg); err != nil {
		logger.Log.Errorw("failed to send reset mail", "to", toEmail, "error", err)
		return err
	}

	logger.Log.Infow("reset mail sent", "to", toEmail)
	return nil
}

// resetBody builds the HTML body around the reset link.
func resetBody(resetLink string) string {
	return fmt.Sprintf(`<p>Click below to reset your password:</p><a href="%s">%s</a>`, resetLink, resetLink)
}
