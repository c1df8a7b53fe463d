package submit_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
	"github.com/m04kA/SMC-ConciergeBooking/internal/eligibility"
)

// Validator интерфейс проверки формы
type Validator interface {
	Validate(form domain.Form, now time.Time) domain.FieldErrors
	Verdict(form domain.Form, now time.Time) eligibility.Verdict
}

// Calculator интерфейс расчета стоимости
type Calculator interface {
	Quote(form domain.Form) (*domain.PriceQuote, error)
}

// Assembler интерфейс сборки записи брони
type Assembler interface {
	Assemble(form domain.Form, quote *domain.PriceQuote, now time.Time) (*domain.ReservationRecord, error)
}

// ReservationStore хранилище брони, из которого ее забирает страница подтверждения
type ReservationStore interface {
	Put(ctx context.Context, sessionID string, record *domain.ReservationRecord) error
}

// Notifier оповещение консьерж-службы о новой брони
type Notifier interface {
	Notify(ctx context.Context, body string) (string, error)
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	ObserveReservation(serviceType string, total float64)
	ObserveNotificationError(channel string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
