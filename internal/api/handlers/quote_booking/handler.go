package quote_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ConciergeBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
	quoteBooking "github.com/m04kA/SMC-ConciergeBooking/internal/usecase/quote_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidForm        = "invalid form payload"
	msgUnknownService     = "unknown service type"
)

type Handler struct {
	useCase QuoteBookingUseCase
	logger  Logger
}

func NewHandler(useCase QuoteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/services/{serviceType}/quote
// Невалидная форма - не ошибка запроса: ошибки полей приходят в теле ответа 200
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	st, err := handlers.ServiceTypeFromPath(r)
	if err != nil {
		h.logger.Warn("POST /services/{type}/quote - Unknown service type: %v", err)
		handlers.RespondNotFound(w, msgUnknownService)
		return
	}

	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services/%s/quote - Invalid request body: %v", st, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	form, err := domain.DecodeForm(st, req.Form)
	if err != nil {
		h.logger.Warn("POST /services/%s/quote - Invalid form: %v", st, err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &quoteBooking.Request{Form: form})
	if err != nil {
		switch {
		case errors.Is(err, quoteBooking.ErrInvalidInput):
			h.logger.Warn("POST /services/%s/quote - Invalid input: %v", st, err)
			handlers.RespondBadRequest(w, msgInvalidForm)
		default:
			h.logger.Error("POST /services/%s/quote - Failed to quote: %v", st, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
