package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSender struct {
	sent *mail.SGMailV3
	resp *rest.Response
	err  error
}

func (f *fakeSender) SendWithContext(_ context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	f.sent = email
	return f.resp, f.err
}

var testConfig = Config{
	FromEmail: "noreply@concierge.example",
	FromName:  "Concierge Booking",
	ToEmail:   "desk@concierge.example",
	ToName:    "Concierge Desk",
}

func TestClient_Send(t *testing.T) {
	sender := &fakeSender{resp: &rest.Response{
		StatusCode: 202,
		Headers:    map[string][]string{"X-Message-Id": {"msg-123"}},
	}}
	client, err := NewClientWithSender(sender, testConfig, nopLogger{})
	require.NoError(t, err)

	id, err := client.Send(context.Background(), Message{
		Subject:   "New inquiry: Island Tour",
		ReplyName: "Jane Doe",
		ReplyTo:   "jane@example.com",
		PlainText: "Hello",
		HTML:      "<p>Hello</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, "msg-123", id)

	require.NotNil(t, sender.sent)
	assert.Equal(t, "New inquiry: Island Tour", sender.sent.Subject)
	assert.Equal(t, "noreply@concierge.example", sender.sent.From.Address)
	require.NotNil(t, sender.sent.ReplyTo)
	assert.Equal(t, "jane@example.com", sender.sent.ReplyTo.Address)
	require.Len(t, sender.sent.Personalizations, 1)
	assert.Equal(t, "desk@concierge.example", sender.sent.Personalizations[0].To[0].Address)
}

func TestClient_Send_HeaderCase(t *testing.T) {
	sender := &fakeSender{resp: &rest.Response{
		StatusCode: 202,
		Headers:    map[string][]string{"x-message-id": {"lower"}},
	}}
	client, err := NewClientWithSender(sender, testConfig, nopLogger{})
	require.NoError(t, err)

	id, err := client.Send(context.Background(), Message{Subject: "s"})
	require.NoError(t, err)
	assert.Equal(t, "lower", id)
}

func TestClient_Send_Errors(t *testing.T) {
	t.Run("network error", func(t *testing.T) {
		client, err := NewClientWithSender(&fakeSender{err: errors.New("timeout")}, testConfig, nopLogger{})
		require.NoError(t, err)

		_, err = client.Send(context.Background(), Message{Subject: "s"})
		assert.True(t, errors.Is(err, ErrSend))
	})

	t.Run("rejected", func(t *testing.T) {
		client, err := NewClientWithSender(&fakeSender{resp: &rest.Response{StatusCode: 401, Body: "unauthorized"}}, testConfig, nopLogger{})
		require.NoError(t, err)

		_, err = client.Send(context.Background(), Message{Subject: "s"})
		assert.True(t, errors.Is(err, ErrRejected))
	})
}

func TestNewClient_NotConfigured(t *testing.T) {
	_, err := NewClient(Config{}, nopLogger{})
	assert.True(t, errors.Is(err, ErrNotConfigured))

	_, err = NewClientWithSender(&fakeSender{}, Config{FromEmail: "a@b.c"}, nopLogger{})
	assert.True(t, errors.Is(err, ErrNotConfigured))
}
