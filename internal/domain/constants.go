package domain

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Currency валюта всех цен каталога
const Currency = "USD"

// ConfirmationPath фиксированный маршрут страницы подтверждения
// Параметры не передаются: запись забирается из хранилища по сессии
const ConfirmationPath = "/booking/confirmation"

// Значения локаций со специальной семантикой
const (
	// LocationOther открывает обязательное поле со свободным адресом
	LocationOther = "other"

	// LocationHotelPickup самовывоз из отеля - доставка не тарифицируется
	LocationHotelPickup = "Hotel pickup"
)

// Ограничения состава группы
const (
	MinAdults      = 1
	MaxAdults      = 20
	MinChildren    = 0
	MaxChildren    = 12
	MinGuests      = 1
	MaxGuests      = 40
	MaxChildAge    = 17
	MaxSelectedQty = 20

	MinVehicleCount = 1
	MaxVehicleCount = 4
)

// Время по умолчанию, если клиент его не указал
const (
	BikeRentalStartTime = "09:00"
	BikeRentalEndTime   = "18:00"
	GolfCartStartTime   = "09:00"
	GolfCartEndTime     = "17:00"
	DecorationSetupTime = "10:00"
)

// Ограничения текстовых полей
const (
	MaxSpecialRequestsLength = 1000
	MaxAddressLength         = 300
	MaxPackageNameLength     = 120
)
