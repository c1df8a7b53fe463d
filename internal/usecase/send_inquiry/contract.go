package send_inquiry

import (
	"context"

	"github.com/m04kA/SMC-ConciergeBooking/internal/integrations/mailer"
)

// Mailer интерфейс отправки письма консьерж-службе
type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) (string, error)
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	ObserveInquiry(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
