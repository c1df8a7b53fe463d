package smsgateway

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/m04kA/SMC-ConciergeBooking/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAPI struct {
	params *openapi.CreateMessageParams
	err    error
}

func (f *fakeAPI) CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return &openapi.ApiV2010Message{Sid: ptr.Ptr("SM123")}, nil
}

var testConfig = Config{FromNumber: "+15550000001", ToNumber: "+15550000002"}

func TestClient_Notify(t *testing.T) {
	api := &fakeAPI{}
	client, err := NewClientWithAPI(api, testConfig, nopLogger{})
	require.NoError(t, err)

	sid, err := client.Notify(context.Background(), "New Yacht Charter reservation")
	require.NoError(t, err)
	assert.Equal(t, "SM123", sid)

	require.NotNil(t, api.params)
	assert.Equal(t, "+15550000002", *api.params.To)
	assert.Equal(t, "+15550000001", *api.params.From)
	assert.Equal(t, "New Yacht Charter reservation", *api.params.Body)
}

func TestClient_Notify_Errors(t *testing.T) {
	t.Run("api error", func(t *testing.T) {
		client, err := NewClientWithAPI(&fakeAPI{err: errors.New("invalid number")}, testConfig, nopLogger{})
		require.NoError(t, err)

		_, err = client.Notify(context.Background(), "x")
		assert.True(t, errors.Is(err, ErrSend))
	})

	t.Run("cancelled context", func(t *testing.T) {
		api := &fakeAPI{}
		client, err := NewClientWithAPI(api, testConfig, nopLogger{})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = client.Notify(ctx, "x")
		assert.True(t, errors.Is(err, ErrSend))
		assert.Nil(t, api.params, "request is not sent")
	})
}

func TestNewClient_NotConfigured(t *testing.T) {
	_, err := NewClient(Config{}, nopLogger{})
	assert.True(t, errors.Is(err, ErrNotConfigured))

	_, err = NewClientWithAPI(&fakeAPI{}, Config{FromNumber: "+1"}, nopLogger{})
	assert.True(t, errors.Is(err, ErrNotConfigured))
}
