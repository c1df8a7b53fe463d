package get_confirmation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
	reservationStore "github.com/m04kA/SMC-ConciergeBooking/internal/infra/storage/reservation"
)

// UseCase use case для страницы подтверждения
// Запись читается один раз: повторный запрос получает ErrReservationNotFound
type UseCase struct {
	store  ReservationStore
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store ReservationStore, logger Logger) *UseCase {
	return &UseCase{
		store:  store,
		logger: logger,
	}
}

// Execute забирает бронь сессии из хранилища
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.ReservationRecord, error) {
	if req == nil || req.SessionID == "" {
		return nil, ErrMissingSession
	}

	record, err := uc.store.Take(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, reservationStore.ErrReservationNotFound) {
			uc.logger.Warn("GetConfirmation: no reservation for session=%s", req.SessionID)
			return nil, ErrReservationNotFound
		}
		if errors.Is(err, reservationStore.ErrEmptySession) {
			return nil, ErrMissingSession
		}
		uc.logger.Error("GetConfirmation: failed to take reservation for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to take reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("GetConfirmation: reservation id=%s handed to session=%s", record.ID, req.SessionID)
	return record, nil
}
