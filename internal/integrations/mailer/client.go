package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// messageIDHeader заголовок ответа SendGrid с идентификатором письма
const messageIDHeader = "X-Message-Id"

// Client отправляет письма-запросы через SendGrid
type Client struct {
	sender Sender
	cfg    Config
	log    Logger
}

// NewClient создает клиент с настоящим SendGrid API
func NewClient(cfg Config, log Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: empty api key", ErrNotConfigured)
	}
	return NewClientWithSender(sendgrid.NewSendClient(cfg.APIKey), cfg, log)
}

// NewClientWithSender создает клиент с заданным отправителем
func NewClientWithSender(sender Sender, cfg Config, log Logger) (*Client, error) {
	if cfg.FromEmail == "" || cfg.ToEmail == "" {
		return nil, fmt.Errorf("%w: from/to email required", ErrNotConfigured)
	}
	return &Client{sender: sender, cfg: cfg, log: log}, nil
}

// Send отправляет письмо и возвращает идентификатор письма у провайдера
func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	from := mail.NewEmail(c.cfg.FromName, c.cfg.FromEmail)
	to := mail.NewEmail(c.cfg.ToName, c.cfg.ToEmail)

	email := mail.NewSingleEmail(from, msg.Subject, to, msg.PlainText, msg.HTML)
	if msg.ReplyTo != "" {
		email.SetReplyTo(mail.NewEmail(msg.ReplyName, msg.ReplyTo))
	}

	resp, err := c.sender.SendWithContext(ctx, email)
	if err != nil {
		c.log.Error("Mailer: failed to send %q: %v", msg.Subject, err)
		return "", fmt.Errorf("%w: %v", ErrSend, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error("Mailer: sendgrid returned status=%d body=%s", resp.StatusCode, resp.Body)
		return "", fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}

	emailID := messageID(resp.Headers)
	c.log.Info("Mailer: sent %q, status=%d, id=%s", msg.Subject, resp.StatusCode, emailID)
	return emailID, nil
}

func messageID(headers map[string][]string) string {
	for key, values := range headers {
		if len(values) > 0 && strings.EqualFold(key, messageIDHeader) {
			return values[0]
		}
	}
	return ""
}
