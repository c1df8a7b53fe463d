package submit_reservation

import "github.com/m04kA/SMC-ConciergeBooking/internal/domain"

// Request модель запроса на отправку брони
type Request struct {
	SessionID      string      // Сессия клиента, владелец брони
	ConfirmSameDay bool        // Клиент подтвердил бронь на сегодня
	Form           domain.Form // Заполненная форма
}

// Response подтверждение принятой брони
type Response struct {
	domain.Confirmation
	StartAt string // Начало услуги в формате RFC3339
}
