package send_inquiry

import sendInquiry "github.com/m04kA/SMC-ConciergeBooking/internal/usecase/send_inquiry"

// InquiryRequest HTTP request model
type InquiryRequest struct {
	ServiceName     string   `json:"serviceName"`
	ServiceType     string   `json:"serviceType"`
	CustomerName    string   `json:"customerName"`
	CustomerEmail   string   `json:"customerEmail"`
	CustomerPhone   string   `json:"customerPhone"`
	TourDate        *string  `json:"tourDate,omitempty"`
	TimeSlot        *string  `json:"timeSlot,omitempty"`
	Location        *string  `json:"location,omitempty"`
	AdultCount      *int     `json:"adultCount,omitempty"`
	ChildCount      *int     `json:"childCount,omitempty"`
	TotalGuests     *int     `json:"totalGuests,omitempty"`
	TotalPrice      *float64 `json:"totalPrice,omitempty"`
	Message         *string  `json:"message,omitempty"`
	SpecialRequests *string  `json:"specialRequests,omitempty"`
}

// InquiryResponse HTTP response model
type InquiryResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EmailID string `json:"emailId"`
}

// ErrorResponse тело ошибки в формате формы запроса
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *InquiryRequest) ToUseCaseRequest() *sendInquiry.Request {
	return &sendInquiry.Request{
		ServiceName:     r.ServiceName,
		ServiceType:     r.ServiceType,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		TourDate:        r.TourDate,
		TimeSlot:        r.TimeSlot,
		Location:        r.Location,
		AdultCount:      r.AdultCount,
		ChildCount:      r.ChildCount,
		TotalGuests:     r.TotalGuests,
		TotalPrice:      r.TotalPrice,
		Message:         r.Message,
		SpecialRequests: r.SpecialRequests,
	}
}
