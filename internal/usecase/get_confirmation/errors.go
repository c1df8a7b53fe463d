package get_confirmation

import "errors"

var (
	// ErrMissingSession возвращается без идентификатора сессии
	ErrMissingSession = errors.New("get_confirmation: missing session id")

	// ErrReservationNotFound возвращается, если брони нет или она уже показана
	ErrReservationNotFound = errors.New("get_confirmation: reservation not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_confirmation: internal error")
)
