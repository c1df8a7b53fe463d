package submit_reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

var (
	// ErrMissingSession возвращается без идентификатора сессии
	ErrMissingSession = errors.New("submit_reservation: missing session id")

	// ErrInvalidInput возвращается, если форма не передана
	ErrInvalidInput = errors.New("submit_reservation: invalid input data")

	// ErrValidation возвращается, если в форме есть ошибки полей
	ErrValidation = errors.New("submit_reservation: form has invalid fields")

	// ErrSameDayConfirmationRequired возвращается для брони на сегодня без подтверждения клиента
	ErrSameDayConfirmationRequired = errors.New("submit_reservation: same-day booking must be confirmed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_reservation: internal error")
)

// ValidationError ошибки полей формы
// errors.Is(err, ErrValidation) == true
type ValidationError struct {
	Fields domain.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrValidation, e.Fields.Fields())
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
