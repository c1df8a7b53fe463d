package smsgateway

import (
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// MessageCreator создание SMS через Twilio API
// Реализуется twilio.RestClient.Api
type MessageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
