package quote_booking

import (
	"encoding/json"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
	quoteBooking "github.com/m04kA/SMC-ConciergeBooking/internal/usecase/quote_booking"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	ConfirmSameDay bool            `json:"confirmSameDay"`
	Form           json.RawMessage `json:"form"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Valid         bool               `json:"valid"`
	Errors        map[string]string  `json:"errors"`
	SameDay       bool               `json:"sameDay"`
	MeetsLeadTime bool               `json:"meetsLeadTime"`
	Quote         *domain.PriceQuote `json:"quote,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteBooking.Response) *QuoteResponse {
	errs := map[string]string{}
	for field, msg := range resp.Errors {
		errs[field] = msg
	}
	return &QuoteResponse{
		Valid:         resp.Valid,
		Errors:        errs,
		SameDay:       resp.SameDay,
		MeetsLeadTime: resp.MeetsLeadTime,
		Quote:         resp.Quote,
	}
}
