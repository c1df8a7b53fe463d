package send_inquiry

// Request запрос клиента по услуге
type Request struct {
	ServiceName     string
	ServiceType     string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	TourDate        *string
	TimeSlot        *string
	Location        *string
	AdultCount      *int
	ChildCount      *int
	TotalGuests     *int
	TotalPrice      *float64
	Message         *string
	SpecialRequests *string
}

// Response результат отправки
type Response struct {
	Success bool
	Message string
	EmailID string
}
