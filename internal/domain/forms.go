package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidForm возвращается, если тело формы не удается разобрать
var ErrInvalidForm = errors.New("domain: invalid form payload")

// Form состояние формы бронирования одной услуги
type Form interface {
	// ServiceType тип услуги формы
	ServiceType() ServiceType

	// EligibilityDateTime дата и (опционально) время HH:MM, по которым проверяется срок бронирования
	EligibilityDateTime() (date string, hhmm string)
}

// Selection выбранная позиция каталога с количеством
type Selection struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// Child ребенок в группе (возраст определяет тариф)
type Child struct {
	Age int `json:"age"`
}

// NewForm возвращает пустую форму для декодирования по типу услуги
func NewForm(st ServiceType) (Form, error) {
	switch st {
	case ServiceAirportTransfer:
		return &AirportTransferForm{}, nil
	case ServiceBikeRental:
		return &BikeRentalForm{}, nil
	case ServiceGolfCart:
		return &GolfCartForm{}, nil
	case ServiceYachtCharter:
		return &YachtCharterForm{}, nil
	case ServiceDecoration:
		return &DecorationForm{}, nil
	case ServiceLiveMusic:
		return &LiveMusicForm{}, nil
	case ServiceIslandTour:
		return &IslandTourForm{}, nil
	case ServiceCustomPackage:
		return &CustomPackageForm{}, nil
	default:
		return nil, ErrUnknownServiceType
	}
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

// DecodeForm разбирает JSON формы указанной услуги
func DecodeForm(st ServiceType, raw json.RawMessage) (Form, error) {
	form, err := NewForm(st)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty form", ErrInvalidForm)
	}
	if err := json.Unmarshal(raw, form); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}
	return form, nil
}

// AirportTransferForm трансфер из аэропорта (опционально - обратно)
type AirportTransferForm struct {
	ArrivalDate  string `json:"arrivalDate"`
	ArrivalTime  string `json:"arrivalTime"`
	Airline      string `json:"airline"`
	FlightNumber string `json:"flightNumber"`

	IsRoundTrip bool `json:"isRoundTrip"`
	// Обратный рейс обязателен только при IsRoundTrip; значения не сбрасываются при выключении
	ReturnDate         string `json:"returnDate"`
	ReturnTime         string `json:"returnTime"`
	ReturnAirline      string `json:"returnAirline"`
	ReturnFlightNumber string `json:"returnFlightNumber"`

	Adults   int `json:"adultCount"`
	Children int `json:"childCount"`
	CarSeats int `json:"carSeats"`

	VehicleType  string `json:"vehicleType"`
	VehicleCount int    `json:"vehicleCount"` // 0 трактуется как 1

	Destination        string `json:"destination"`        // отель или "other"
	DestinationAddress string `json:"destinationAddress"` // обязателен для "other"

	SpecialRequests string `json:"specialRequests"`
}

func (f *AirportTransferForm) ServiceType() ServiceType { return ServiceAirportTransfer }

func (f *AirportTransferForm) EligibilityDateTime() (string, string) {
	return f.ArrivalDate, f.ArrivalTime
}

// Vehicles количество машин с учетом значения по умолчанию
func (f *AirportTransferForm) Vehicles() int {
	if f.VehicleCount <= 0 {
		return 1
	}
	return f.VehicleCount
}

// BikeRentalForm прокат велосипедов
type BikeRentalForm struct {
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	PickupTime string `json:"pickupTime"`

	Adults   int `json:"adultCount"`
	Children int `json:"childCount"`

	Bikes []Selection `json:"bikes"`

	Location        string `json:"location"`
	DeliveryToHotel bool   `json:"deliveryToHotel"`
	HotelName       string `json:"hotelName"`

	SpecialRequests string `json:"specialRequests"`
}

func (f *BikeRentalForm) ServiceType() ServiceType { return ServiceBikeRental }

func (f *BikeRentalForm) EligibilityDateTime() (string, string) {
	return f.StartDate, orDefault(f.PickupTime, BikeRentalStartTime)
}

// GolfCartForm аренда гольф-каров
type GolfCartForm struct {
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	PickupTime string `json:"pickupTime"`

	Guests int `json:"guestCount"`

	Carts []Selection `json:"carts"`

	Delivery        bool   `json:"delivery"`
	DeliveryAddress string `json:"deliveryAddress"`

	SpecialRequests string `json:"specialRequests"`
}

func (f *GolfCartForm) ServiceType() ServiceType { return ServiceGolfCart }

func (f *GolfCartForm) EligibilityDateTime() (string, string) {
	return f.StartDate, orDefault(f.PickupTime, GolfCartStartTime)
}

// YachtCharterForm чартер яхты
type YachtCharterForm struct {
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	DurationHours int    `json:"durationHours"`

	Adults   int `json:"adultCount"`
	Children int `json:"childCount"`

	YachtType   string   `json:"yachtType"`
	Catering    string   `json:"catering"`
	WaterSports []string `json:"waterSports"`

	NeedsTransport bool   `json:"needsTransport"`
	PickupLocation string `json:"pickupLocation"`
	PickupAddress  string `json:"pickupAddress"`

	SpecialRequests string `json:"specialRequests"`
}

func (f *YachtCharterForm) ServiceType() ServiceType { return ServiceYachtCharter }

func (f *YachtCharterForm) EligibilityDateTime() (string, string) {
	return f.Date, f.StartTime
}

// DecorationForm оформление события
type DecorationForm struct {
	Date      string `json:"date"`
	SetupTime string `json:"setupTime"`

	Occasion string   `json:"occasion"`
	Package  string   `json:"package"`
	Addons   []string `json:"addons"`

	Location string `json:"location"`
	Address  string `json:"address"`

	SpecialRequests string `json:"specialRequests"`
}

func (f *DecorationForm) ServiceType() ServiceType { return ServiceDecoration }

func (f *DecorationForm) EligibilityDateTime() (string, string) {
	return f.Date, orDefault(f.SetupTime, DecorationSetupTime)
}

// LiveMusicForm живая музыка
type LiveMusicForm struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`

	Performer   string `json:"performer"`
	SetOption   string `json:"setOption"`
	Genre       string `json:"genre"`
	SoundSystem bool   `json:"soundSystem"`

	Venue        string `json:"venue"`
	VenueAddress string `json:"venueAddress"`

	SpecialRequests string `json:"specialRequests"`
}

func (f *LiveMusicForm) ServiceType() ServiceType { return ServiceLiveMusic }

func (f *LiveMusicForm) EligibilityDateTime() (string, string) {
	return f.Date, f.StartTime
}

// IslandTourForm тур по острову
// Время сбора фиксировано каталогом, PickupTime из формы игнорируется
type IslandTourForm struct {
	Date       string `json:"date"`
	PickupTime string `json:"pickupTime"`

	Adults   int     `json:"adultCount"`
	Children []Child `json:"children"`

	PrivateTour    bool   `json:"privateTour"`
	PickupLocation string `json:"pickupLocation"`

	SpecialRequests string `json:"specialRequests"`
}

func (f *IslandTourForm) ServiceType() ServiceType { return ServiceIslandTour }

// EligibilityDateTime возвращает только дату: время сбора подставляется из каталога
func (f *IslandTourForm) EligibilityDateTime() (string, string) {
	return f.Date, ""
}

// CustomPackageForm конструктор пакета из нескольких услуг
type CustomPackageForm struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	Guests int         `json:"guestCount"`
	Items  []Selection `json:"items"`

	SpecialRequests string `json:"specialRequests"`
}

func (f *CustomPackageForm) ServiceType() ServiceType { return ServiceCustomPackage }

func (f *CustomPackageForm) EligibilityDateTime() (string, string) {
	return f.StartDate, ""
}
