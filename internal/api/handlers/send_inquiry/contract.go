package send_inquiry

import (
	"context"

	sendInquiry "github.com/m04kA/SMC-ConciergeBooking/internal/usecase/send_inquiry"
)

type SendInquiryUseCase interface {
	Execute(ctx context.Context, req *sendInquiry.Request) (*sendInquiry.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
