package send_inquiry

import "errors"

var (
	// ErrInvalidInput возвращается при пустом имени или некорректном email
	ErrInvalidInput = errors.New("send_inquiry: invalid input data")

	// ErrSendFailed возвращается, если письмо не удалось отправить
	ErrSendFailed = errors.New("send_inquiry: failed to send inquiry")
)
