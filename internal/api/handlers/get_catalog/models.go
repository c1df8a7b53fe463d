package get_catalog

import "github.com/m04kA/SMC-ConciergeBooking/internal/domain"

// CatalogResponse HTTP response model
type CatalogResponse struct {
	ServiceType domain.ServiceType `json:"serviceType"`
	ServiceName string             `json:"serviceName"`
	LeadHours   int                `json:"leadHours"`
	Currency    string             `json:"currency"`
	Catalog     interface{}        `json:"catalog"`
}
