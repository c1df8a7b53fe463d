package get_confirmation

import (
	"context"
	"io"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
	getConfirmation "github.com/m04kA/SMC-ConciergeBooking/internal/usecase/get_confirmation"
)

type GetConfirmationUseCase interface {
	Execute(ctx context.Context, req *getConfirmation.Request) (*domain.ReservationRecord, error)
}

// VoucherRenderer формирует PDF ваучер
type VoucherRenderer interface {
	Render(w io.Writer, record *domain.ReservationRecord) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
