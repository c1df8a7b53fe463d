package save_package

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ConciergeBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ConciergeBooking/internal/api/middleware"
	"github.com/m04kA/SMC-ConciergeBooking/internal/service/packages"
	"github.com/m04kA/SMC-ConciergeBooking/internal/service/packages/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingSession     = "missing session id"
	msgInvalidPackage     = "invalid package"
	msgValidationFailed   = "please correct the highlighted fields"
	msgNotFound           = "package not found"
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

// Handle POST /api/v1/packages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /packages - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req models.SavePackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /packages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.OwnerID = sessionID

	pkg, err := h.service.Save(r.Context(), &req)
	if err != nil {
		var validationErr *packages.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /packages - Validation failed: fields=%v", validationErr.Fields.Fields())
			handlers.RespondValidationError(w, msgValidationFailed, validationErr.Fields)
		case errors.Is(err, packages.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPackage)
		case errors.Is(err, packages.ErrPackageNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, packages.ErrMissingOwner):
			handlers.RespondUnauthorized(w, msgMissingSession)
		default:
			h.logger.Error("POST /packages - Failed to save package: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if req.ID != "" {
		status = http.StatusOK
	}
	h.logger.Info("POST /packages - Package saved: id=%s, session=%s", pkg.ID, sessionID)
	handlers.RespondJSON(w, status, pkg)
}
