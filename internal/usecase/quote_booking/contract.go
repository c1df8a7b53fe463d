package quote_booking

import (
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

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	ObserveQuote(serviceType string, valid bool)
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время в часовом поясе курорта
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
