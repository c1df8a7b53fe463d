package get_confirmation

import (
	"context"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

// ReservationStore хранилище брони сессии
type ReservationStore interface {
	Take(ctx context.Context, sessionID string) (*domain.ReservationRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
