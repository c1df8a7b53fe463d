package assembler

import "errors"

var (
	// ErrInvalidSchedule возвращается, если из формы не удается получить время начала
	ErrInvalidSchedule = errors.New("assembler: invalid schedule")

	// ErrQuoteMismatch возвращается, если расчет цены относится к другой услуге
	ErrQuoteMismatch = errors.New("assembler: quote does not match form")

	// ErrEncodeForm возвращается при ошибке сериализации формы
	ErrEncodeForm = errors.New("assembler: failed to encode form")
)
