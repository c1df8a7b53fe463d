package quote_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ConciergeBooking/internal/pricing"
)

// UseCase живой расчет стоимости и проверка формы
// Ничего не сохраняет: вызывается на каждое изменение формы
type UseCase struct {
	validator    Validator
	calculator   Calculator
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	validator Validator,
	calculator Calculator,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		validator:    validator,
		calculator:   calculator,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute проверяет форму и считает цену
// Невалидная форма тоже получает цену, если все выбранные опции известны
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Form == nil {
		return nil, ErrInvalidInput
	}
	st := req.Form.ServiceType()

	now := uc.timeProvider.Now()

	errs := uc.validator.Validate(req.Form, now)
	verdict := uc.validator.Verdict(req.Form, now)

	resp := &Response{
		Valid:         errs.Empty(),
		Errors:        errs,
		SameDay:       verdict.SameDay,
		MeetsLeadTime: verdict.MeetsLeadTime,
	}

	quote, err := uc.calculator.Quote(req.Form)
	switch {
	case err == nil:
		resp.Quote = quote
	case errors.Is(err, pricing.ErrUnknownOption):
		// Ошибка уже есть в карте полей, цена просто не показывается
		uc.logger.Info("QuoteBooking: service=%s price omitted: %v", st, err)
	default:
		uc.logger.Error("QuoteBooking: service=%s failed to price form: %v", st, err)
		return nil, fmt.Errorf("%w: failed to price form: %v", ErrInternal, err)
	}

	uc.metrics.ObserveQuote(st.String(), resp.Valid)

	if !resp.Valid {
		uc.logger.Info("QuoteBooking: service=%s invalid fields=%v", st, errs.Fields())
	}
	return resp, nil
}
