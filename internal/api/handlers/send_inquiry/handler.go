package send_inquiry

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ConciergeBooking/internal/api/handlers"
	sendInquiry "github.com/m04kA/SMC-ConciergeBooking/internal/usecase/send_inquiry"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidContact     = "Name and a valid email address are required"
	msgSendFailed         = "Failed to send inquiry. Please try again later."
	msgTooManyRequests    = "Too many inquiries. Please try again in a minute."
)

type Handler struct {
	useCase SendInquiryUseCase
	logger  Logger
}

func NewHandler(useCase SendInquiryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/services/inquiry
// Ответы в формате {error} / {success, message, emailId}, который ждет форма запроса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req InquiryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services/inquiry - Invalid request body: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidRequestBody})
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, sendInquiry.ErrInvalidInput):
			h.logger.Warn("POST /services/inquiry - Invalid contact data: %v", err)
			handlers.RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidContact})
		default:
			h.logger.Error("POST /services/inquiry - Failed to send inquiry: %v", err)
			handlers.RespondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgSendFailed})
		}
		return
	}

	h.logger.Info("POST /services/inquiry - Inquiry sent: service=%q, emailId=%s", req.ServiceName, result.EmailID)
	handlers.RespondJSON(w, http.StatusOK, InquiryResponse{
		Success: result.Success,
		Message: result.Message,
		EmailID: result.EmailID,
	})
}

// TooManyRequests ответ ограничителя запросов в формате формы
func (h *Handler) TooManyRequests(w http.ResponseWriter, r *http.Request) {
	h.logger.Warn("POST /services/inquiry - Rate limit exceeded for %s", r.RemoteAddr)
	handlers.RespondJSON(w, http.StatusTooManyRequests, ErrorResponse{Error: msgTooManyRequests})
}
