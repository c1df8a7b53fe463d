package delete_package

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ConciergeBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ConciergeBooking/internal/api/middleware"
	"github.com/m04kA/SMC-ConciergeBooking/internal/service/packages"
)

const (
	msgMissingSession = "missing session id"
	msgNotFound       = "package not found"
)

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

// Handle DELETE /api/v1/packages/{packageId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	packageID := mux.Vars(r)["packageId"]

	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /packages/{id} - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	if err := h.service.Delete(r.Context(), sessionID, packageID); err != nil {
		switch {
		case errors.Is(err, packages.ErrPackageNotFound):
			h.logger.Warn("DELETE /packages/{id} - Package not found: id=%s, session=%s", packageID, sessionID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("DELETE /packages/{id} - Failed to delete package: id=%s, error=%v", packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /packages/{id} - Package deleted: id=%s, session=%s", packageID, sessionID)
	w.WriteHeader(http.StatusNoContent)
}
