package list_packages

import (
	"net/http"

	"github.com/m04kA/SMC-ConciergeBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ConciergeBooking/internal/api/middleware"
)

const msgMissingSession = "missing session id"

type Handler struct {
	service PackageService
	logger  Logger
}

func NewHandler(service PackageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/packages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("GET /packages - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	list, err := h.service.List(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /packages - Failed to list packages: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
