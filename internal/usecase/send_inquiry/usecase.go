package send_inquiry

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

const successMessage = "Your inquiry has been sent. Our concierge team will contact you shortly."

// Результаты для метрик
const (
	resultSent    = "sent"
	resultInvalid = "invalid"
	resultFailed  = "failed"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UseCase пересылает запрос клиента на почту консьерж-службы
type UseCase struct {
	mailer  Mailer
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(mailer Mailer, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		mailer:  mailer,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute проверяет контакты клиента и отправляет письмо
// Повторов нет: при ошибке клиент отправляет форму заново
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.metrics.ObserveInquiry(resultInvalid)
		uc.logger.Warn("SendInquiry: validation failed: %v", err)
		return nil, err
	}

	emailID, err := uc.mailer.Send(ctx, buildMessage(req))
	if err != nil {
		uc.metrics.ObserveInquiry(resultFailed)
		uc.logger.Error("SendInquiry: failed to send inquiry for service=%q: %v", req.ServiceName, err)
		return nil, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	uc.metrics.ObserveInquiry(resultSent)
	uc.logger.Info("SendInquiry: inquiry for service=%q sent, emailId=%s", req.ServiceName, emailID)

	return &Response{
		Success: true,
		Message: successMessage,
		EmailID: emailID,
	}, nil
}

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.CustomerEmail) == "" {
		return fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}
	if !emailPattern.MatchString(req.CustomerEmail) {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	return nil
}
