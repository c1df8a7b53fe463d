package mailer

import "errors"

var (
	// ErrNotConfigured возвращается, если не задан ключ или адреса
	ErrNotConfigured = errors.New("mailer: sendgrid is not configured")

	// ErrSend возвращается при сетевой ошибке отправки
	ErrSend = errors.New("mailer: failed to send email")

	// ErrRejected возвращается, если SendGrid ответил неуспешным статусом
	ErrRejected = errors.New("mailer: email rejected by provider")
)
