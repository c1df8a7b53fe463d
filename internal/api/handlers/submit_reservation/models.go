package submit_reservation

import (
	"encoding/json"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
	submitReservation "github.com/m04kA/SMC-ConciergeBooking/internal/usecase/submit_reservation"
)

// SubmitRequest HTTP request model
type SubmitRequest struct {
	ConfirmSameDay bool            `json:"confirmSameDay"`
	Form           json.RawMessage `json:"form"`
}

// ConfirmationResponse HTTP response model
type ConfirmationResponse struct {
	ReservationID    string             `json:"reservationId"`
	ServiceType      domain.ServiceType `json:"serviceType"`
	ConfirmationPath string             `json:"confirmationPath"`
	Total            float64            `json:"total"`
	Currency         string             `json:"currency"`
	SameDay          bool               `json:"sameDay"`
	StartAt          string             `json:"startAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitReservation.Response) *ConfirmationResponse {
	return &ConfirmationResponse{
		ReservationID:    resp.ReservationID,
		ServiceType:      resp.ServiceType,
		ConfirmationPath: resp.ConfirmationPath,
		Total:            resp.Total,
		Currency:         resp.Currency,
		SameDay:          resp.SameDay,
		StartAt:          resp.StartAt,
	}
}
