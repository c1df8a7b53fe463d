package submit_reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

const notificationChannel = "sms"

// UseCase use case для отправки брони
// Хранилище пишется только после успешной сборки записи
type UseCase struct {
	validator    Validator
	calculator   Calculator
	assembler    Assembler
	store        ReservationStore
	notifier     Notifier
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// notifier может быть nil - оповещение отключено
func NewUseCase(
	validator Validator,
	calculator Calculator,
	assembler Assembler,
	store ReservationStore,
	notifier Notifier,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		validator:    validator,
		calculator:   calculator,
		assembler:    assembler,
		store:        store,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute проверяет форму, считает цену, собирает запись и передает ее в хранилище сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Form == nil {
		return nil, ErrInvalidInput
	}
	if req.SessionID == "" {
		return nil, ErrMissingSession
	}
	st := req.Form.ServiceType()

	uc.logger.Info("SubmitReservation: session=%s, service=%s, confirmSameDay=%t", req.SessionID, st, req.ConfirmSameDay)

	now := uc.timeProvider.Now()

	// 1. Валидация формы
	if errs := uc.validator.Validate(req.Form, now); !errs.Empty() {
		uc.logger.Warn("SubmitReservation: service=%s invalid fields=%v", st, errs.Fields())
		return nil, &ValidationError{Fields: errs}
	}

	// 2. Бронь на сегодня требует явного подтверждения
	verdict := uc.validator.Verdict(req.Form, now)
	if verdict.SameDay && !req.ConfirmSameDay {
		uc.logger.Info("SubmitReservation: service=%s same-day booking awaits confirmation", st)
		return nil, ErrSameDayConfirmationRequired
	}

	// 3. Расчет стоимости
	quote, err := uc.calculator.Quote(req.Form)
	if err != nil {
		uc.logger.Error("SubmitReservation: service=%s failed to price valid form: %v", st, err)
		return nil, fmt.Errorf("%w: failed to price form: %v", ErrInternal, err)
	}

	// 4. Сборка записи
	record, err := uc.assembler.Assemble(req.Form, quote, now)
	if err != nil {
		uc.logger.Error("SubmitReservation: service=%s failed to assemble reservation: %v", st, err)
		return nil, fmt.Errorf("%w: failed to assemble reservation: %v", ErrInternal, err)
	}

	// 5. Передача в хранилище сессии
	if err := uc.store.Put(ctx, req.SessionID, record); err != nil {
		uc.logger.Error("SubmitReservation: failed to store reservation id=%s: %v", record.ID, err)
		return nil, fmt.Errorf("%w: failed to store reservation: %v", ErrInternal, err)
	}

	uc.metrics.ObserveReservation(st.String(), record.Total())
	uc.logger.Info("SubmitReservation: reservation id=%s stored, service=%s, total=%.2f, sameDay=%t",
		record.ID, st, record.Total(), record.SameDay)

	// 6. Оповещение консьержа, ошибка не отменяет бронь
	uc.notify(ctx, record)

	return &Response{
		Confirmation: domain.Confirmation{
			ReservationID:    record.ID,
			ServiceType:      record.ServiceType,
			ConfirmationPath: domain.ConfirmationPath,
			Total:            record.Total(),
			Currency:         record.Quote.Currency,
			SameDay:          record.SameDay,
		},
		StartAt: record.StartAt.Format(time.RFC3339),
	}, nil
}

func (uc *UseCase) notify(ctx context.Context, record *domain.ReservationRecord) {
	if uc.notifier == nil {
		return
	}

	sid, err := uc.notifier.Notify(ctx, notificationBody(record))
	if err != nil {
		uc.metrics.ObserveNotificationError(notificationChannel)
		uc.logger.Warn("SubmitReservation: failed to notify concierge about id=%s: %v", record.ID, err)
		return
	}
	uc.logger.Info("SubmitReservation: concierge notified about id=%s, sid=%s", record.ID, sid)
}

func notificationBody(record *domain.ReservationRecord) string {
	body := fmt.Sprintf("New %s booking %s: %s", record.ServiceName, shortID(record.ID), record.StartAt.Format("Jan 2 15:04"))
	if record.Party.Total > 0 {
		body += fmt.Sprintf(", %d guests", record.Party.Total)
	}
	body += fmt.Sprintf(", total $%.2f", record.Total())
	if record.SameDay {
		body += " (SAME DAY)"
	}
	return body
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
