package smsgateway

import "errors"

var (
	// ErrNotConfigured возвращается, если не заданы учетные данные или номера
	ErrNotConfigured = errors.New("smsgateway: twilio is not configured")

	// ErrSend возвращается при ошибке отправки SMS
	ErrSend = errors.New("smsgateway: failed to send sms")
)
