package quote_booking

import "errors"

var (
	// ErrInvalidInput возвращается, если форма не передана
	ErrInvalidInput = errors.New("quote_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_booking: internal error")
)
