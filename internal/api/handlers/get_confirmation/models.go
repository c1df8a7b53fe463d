package get_confirmation

import (
	"time"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          string             `json:"id"`
	ServiceType domain.ServiceType `json:"serviceType"`
	ServiceName string             `json:"serviceName"`
	StartAt     string             `json:"startAt"`
	EndAt       *string            `json:"endAt,omitempty"`
	Party       domain.Party       `json:"party"`
	LineItems   []domain.LineItem  `json:"lineItems"`
	Quote       domain.PriceQuote  `json:"quote"`
	Total       float64            `json:"total"`
	SameDay     bool               `json:"sameDay"`
	CreatedAt   string             `json:"createdAt"`
}

// FromDomainReservation конвертирует запись брони в HTTP response
func FromDomainReservation(record *domain.ReservationRecord) *ReservationResponse {
	resp := &ReservationResponse{
		ID:          record.ID,
		ServiceType: record.ServiceType,
		ServiceName: record.ServiceName,
		StartAt:     record.StartAt.Format(time.RFC3339),
		Party:       record.Party,
		LineItems:   record.LineItems,
		Quote:       record.Quote,
		Total:       record.Total(),
		SameDay:     record.SameDay,
		CreatedAt:   record.CreatedAt.Format(time.RFC3339),
	}
	if record.EndAt != nil {
		endAt := record.EndAt.Format(time.RFC3339)
		resp.EndAt = &endAt
	}
	if resp.LineItems == nil {
		resp.LineItems = []domain.LineItem{}
	}
	return resp
}
