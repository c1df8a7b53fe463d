package smsgateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Config учетные данные Twilio и номера
type Config struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	ToNumber   string // номер дежурного консьержа
}

// Client отправляет SMS-уведомления консьерж-службе
type Client struct {
	api  MessageCreator
	from string
	to   string
	log  Logger
}

// NewClient создает клиент с настоящим Twilio API
func NewClient(cfg Config, log Logger) (*Client, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" {
		return nil, fmt.Errorf("%w: account sid and auth token required", ErrNotConfigured)
	}

	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   cfg.AccountSID,
		Password:   cfg.AuthToken,
		AccountSid: cfg.AccountSID,
	})

	return NewClientWithAPI(rest.Api, cfg, log)
}

// NewClientWithAPI создает клиент с заданной реализацией API
func NewClientWithAPI(api MessageCreator, cfg Config, log Logger) (*Client, error) {
	if cfg.FromNumber == "" || cfg.ToNumber == "" {
		return nil, fmt.Errorf("%w: from/to numbers required", ErrNotConfigured)
	}
	if !strings.HasPrefix(cfg.ToNumber, "+") {
		log.Warn("SMSGateway: destination %s is not in E.164 format", cfg.ToNumber)
	}
	return &Client{api: api, from: cfg.FromNumber, to: cfg.ToNumber, log: log}, nil
}

// Notify отправляет SMS на номер консьержа; возвращает SID сообщения
// Twilio SDK не принимает контекст, отмененный контекст проверяется до запроса
func (c *Client) Notify(ctx context.Context, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSend, err)
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(c.to)
	params.SetFrom(c.from)
	params.SetBody(body)

	resp, err := c.api.CreateMessage(params)
	if err != nil {
		c.log.Error("SMSGateway: failed to send sms to %s: %v", c.to, err)
		return "", fmt.Errorf("%w: %v", ErrSend, err)
	}

	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	c.log.Info("SMSGateway: sms sent to %s, sid=%s", c.to, sid)
	return sid, nil
}
