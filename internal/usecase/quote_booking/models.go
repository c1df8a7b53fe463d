package quote_booking

import "github.com/m04kA/SMC-ConciergeBooking/internal/domain"

// Request модель запроса на расчет
type Request struct {
	Form domain.Form // Текущее состояние формы
}

// Response живой расчет для формы
type Response struct {
	Valid         bool               // Форму можно отправлять
	Errors        domain.FieldErrors // Ошибки полей, пустая карта для валидной формы
	SameDay       bool               // Бронь на сегодня, нужно подтверждение
	MeetsLeadTime bool               // Соблюден минимальный срок
	Quote         *domain.PriceQuote // nil, если цену посчитать нельзя
}
