package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда для сессии нет записи (или она уже забрана)
	ErrReservationNotFound = errors.New("reservation.store: reservation not found")

	// ErrEncode возвращается при ошибке сериализации записи
	ErrEncode = errors.New("reservation.store: failed to encode reservation")

	// ErrDecode возвращается при ошибке десериализации записи
	ErrDecode = errors.New("reservation.store: failed to decode reservation")

	// ErrStore возвращается при ошибке обращения к хранилищу
	ErrStore = errors.New("reservation.store: storage error")

	// ErrEmptySession возвращается для пустого идентификатора сессии
	ErrEmptySession = errors.New("reservation.store: empty session id")
)
