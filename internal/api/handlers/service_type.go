package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

// ServiceTypeFromPath тип услуги из переменной маршрута {serviceType}
func ServiceTypeFromPath(r *http.Request) (domain.ServiceType, error) {
	return domain.ParseServiceType(mux.Vars(r)["serviceType"])
}
