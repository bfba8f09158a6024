// Package mail sends transactional email over SMTP. When SMTP is not
// configured the client runs disabled and logs what it would have sent, which
// keeps registration working in development.
package mail

import (
	"fmt"
	"net/url"

	"webuild-dashboard/pkg/utils"

	"github.com/dajohi/goemail"
	"go.uber.org/zap"
)

type Mailer interface {
	IsEnabled() bool
	Send(recipient, subject, body string) error
	SendVerificationEmail(recipient, token string) error
}

type client struct {
	smtp     *goemail.SMTP
	from     string
	fromName string
	baseURL  string
	disabled bool
	log      *zap.Logger
}

// NewClient builds the SMTP mailer. An empty SMTP host yields a disabled
// client rather than an error.
func NewClient(cfg utils.SMTPConfig, baseURL string, log *zap.Logger) (Mailer, error) {
	c := &client{
		from:     cfg.From,
		fromName: cfg.FromName,
		baseURL:  baseURL,
		log:      log.With(zap.String("component", "mail")),
	}

	if !cfg.Enabled() {
		c.disabled = true
		return c, nil
	}

	u, err := url.Parse(cfg.Host)
	if err != nil {
		return nil, fmt.Errorf("parse smtp host %s: %w", cfg.Host, err)
	}
	if cfg.User != "" && cfg.Password != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}

	smtp, err := goemail.NewSMTP(u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("init smtp client: %w", err)
	}
	c.smtp = smtp

	return c, nil
}

func (c *client) IsEnabled() bool {
	return !c.disabled
}

func (c *client) Send(recipient, subject, body string) error {
	if c.disabled {
		c.log.Info("Mail disabled, skipping send",
			zap.String("recipient", recipient),
			zap.String("subject", subject),
		)
		return nil
	}

	msg := goemail.NewHTMLMessage(c.from, subject, body)
	msg.SetName(c.fromName)
	msg.AddTo(recipient)

	return c.smtp.Send(msg)
}

func (c *client) SendVerificationEmail(recipient, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", c.baseURL, token)

	body := fmt.Sprintf(`<p>Welcome to WE-BUILD.</p>
<p>Please confirm your email address by clicking the link below. The link is
valid for 24 hours.</p>
<p><a href="%s">Verify email address</a></p>
<p>If you did not create an account, you can ignore this message.</p>`, link)

	return c.Send(recipient, "Verify your WE-BUILD email address", body)
}
