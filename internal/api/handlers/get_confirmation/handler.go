package get_confirmation

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ConciergeBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ConciergeBooking/internal/api/middleware"
	getConfirmation "github.com/m04kA/SMC-ConciergeBooking/internal/usecase/get_confirmation"
)

const (
	pdfContentType = "application/pdf"

	msgMissingSession = "missing session id"
	msgNotFound       = "no reservation to confirm; it may have already been shown"
)

type Handler struct {
	useCase  GetConfirmationUseCase
	renderer VoucherRenderer
	logger   Logger
}

func NewHandler(useCase GetConfirmationUseCase, renderer VoucherRenderer, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /api/v1/booking/confirmation
// Запись выдается один раз; Accept: application/pdf возвращает ваучер
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("GET /booking/confirmation - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	record, err := h.useCase.Execute(r.Context(), &getConfirmation.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, getConfirmation.ErrReservationNotFound):
			h.logger.Warn("GET /booking/confirmation - Reservation not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, getConfirmation.ErrMissingSession):
			handlers.RespondUnauthorized(w, msgMissingSession)
		default:
			h.logger.Error("GET /booking/confirmation - Failed to get reservation: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if !wantsPDF(r) {
		handlers.RespondJSON(w, http.StatusOK, FromDomainReservation(record))
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, record); err != nil {
		h.logger.Error("GET /booking/confirmation - Failed to render voucher for id=%s: %v", record.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", pdfContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=\"voucher-%s.pdf\"", record.ID))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("GET /booking/confirmation - Failed to write voucher for id=%s: %v", record.ID, err)
	}
}

func wantsPDF(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), pdfContentType)
}
