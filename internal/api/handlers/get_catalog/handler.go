package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-ConciergeBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

const msgUnknownService = "unknown service type"

type Handler struct {
	catalogs CatalogProvider
	logger   Logger
}

func NewHandler(catalogs CatalogProvider, logger Logger) *Handler {
	return &Handler{
		catalogs: catalogs,
		logger:   logger,
	}
}

// Handle GET /api/v1/services/{serviceType}/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	st, err := handlers.ServiceTypeFromPath(r)
	if err != nil {
		h.logger.Warn("GET /services/{type}/catalog - Unknown service type: %v", err)
		handlers.RespondNotFound(w, msgUnknownService)
		return
	}

	catalog, err := h.catalogs.For(st)
	if err != nil {
		h.logger.Error("GET /services/{type}/catalog - Failed to get catalog for %s: %v", st, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &CatalogResponse{
		ServiceType: st,
		ServiceName: st.Name(),
		LeadHours:   st.LeadHours(),
		Currency:    domain.Currency,
		Catalog:     catalog,
	})
}
