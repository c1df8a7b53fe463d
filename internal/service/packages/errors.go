package packages

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

var (
	// ErrPackageNotFound возвращается, когда пакет не найден у владельца
	ErrPackageNotFound = errors.New("package not found")

	// ErrMissingOwner возвращается без идентификатора сессии-владельца
	ErrMissingOwner = errors.New("missing package owner")

	// ErrInvalidInput возвращается при некорректном пакете
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// ValidationError ошибки полей черновика пакета
// errors.Is(err, ErrInvalidInput) == true
type ValidationError struct {
	Fields domain.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInvalidInput, e.Fields.Fields())
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
