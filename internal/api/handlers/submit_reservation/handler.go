package submit_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ConciergeBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ConciergeBooking/internal/api/middleware"
	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
	submitReservation "github.com/m04kA/SMC-ConciergeBooking/internal/usecase/submit_reservation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidForm        = "invalid form payload"
	msgUnknownService     = "unknown service type"
	msgMissingSession     = "missing session id"
	msgValidationFailed   = "please correct the highlighted fields"
	msgSameDay            = "same-day bookings must be confirmed; resubmit with confirmSameDay=true"
)

type Handler struct {
	useCase SubmitReservationUseCase
	logger  Logger
}

func NewHandler(useCase SubmitReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/services/{serviceType}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	st, err := handlers.ServiceTypeFromPath(r)
	if err != nil {
		h.logger.Warn("POST /services/{type}/reservations - Unknown service type: %v", err)
		handlers.RespondNotFound(w, msgUnknownService)
		return
	}

	// Сессия кладется в контекст middleware Session
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /services/%s/reservations - Missing session ID", st)
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services/%s/reservations - Invalid request body: %v", st, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	form, err := domain.DecodeForm(st, req.Form)
	if err != nil {
		h.logger.Warn("POST /services/%s/reservations - Invalid form: %v", st, err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitReservation.Request{
		SessionID:      sessionID,
		ConfirmSameDay: req.ConfirmSameDay,
		Form:           form,
	})
	if err != nil {
		var validationErr *submitReservation.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /services/%s/reservations - Validation failed: fields=%v", st, validationErr.Fields.Fields())
			handlers.RespondValidationError(w, msgValidationFailed, validationErr.Fields)

		case errors.Is(err, submitReservation.ErrSameDayConfirmationRequired):
			h.logger.Info("POST /services/%s/reservations - Same-day confirmation required: session=%s", st, sessionID)
			handlers.RespondConflict(w, msgSameDay)

		case errors.Is(err, submitReservation.ErrMissingSession):
			handlers.RespondUnauthorized(w, msgMissingSession)

		case errors.Is(err, submitReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidForm)

		default:
			h.logger.Error("POST /services/%s/reservations - Failed to submit reservation: session=%s, error=%v",
				st, sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services/%s/reservations - Reservation submitted: id=%s, session=%s",
		st, result.ReservationID, sessionID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
