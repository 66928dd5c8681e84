package notification

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/nuffylu-cyber/property-management-system/internal/shared/config"
)

// SMTPChannel delivers lifecycle notifications to the property office
// mailbox via email.
type SMTPChannel struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPChannel(cfg config.SMTPConfig) *SMTPChannel {
	return &SMTPChannel{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (c *SMTPChannel) Name() string {
	return "smtp"
}

func (c *SMTPChannel) Send(ctx context.Context, msg Message) error {
	if len(c.cfg.Recipients) == 0 {
		return fmt.Errorf("no recipients configured")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", c.cfg.FromAddress, c.cfg.FromName)
	m.SetHeader("To", c.cfg.Recipients...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := c.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}
	return nil
}
