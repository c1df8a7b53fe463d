package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownServiceType возвращается для неизвестного типа услуги
var ErrUnknownServiceType = errors.New("domain: unknown service type")

// ServiceType тип бронируемой услуги
type ServiceType string

const (
	ServiceAirportTransfer ServiceType = "airport_transfer"
	ServiceBikeRental      ServiceType = "bike_rental"
	ServiceGolfCart        ServiceType = "golf_cart"
	ServiceYachtCharter    ServiceType = "yacht_charter"
	ServiceDecoration      ServiceType = "decoration"
	ServiceLiveMusic       ServiceType = "live_music"
	ServiceIslandTour      ServiceType = "island_tour"
	ServiceCustomPackage   ServiceType = "custom_package"
)

// AllServiceTypes все поддерживаемые типы услуг
var AllServiceTypes = []ServiceType{
	ServiceAirportTransfer,
	ServiceBikeRental,
	ServiceGolfCart,
	ServiceYachtCharter,
	ServiceDecoration,
	ServiceLiveMusic,
	ServiceIslandTour,
	ServiceCustomPackage,
}

// Минимальный срок бронирования в часах
const (
	DefaultLeadHours    = 24
	DecorationLeadHours = 72
)

// RangeRule правило упорядоченности начала и конца
type RangeRule int

const (
	// RangeNone у услуги нет явного конца
	RangeNone RangeRule = iota
	// RangeInclusive конец не раньше начала (end >= start)
	RangeInclusive
	// RangeStrict конец строго позже начала (end > start)
	RangeStrict
)

// ParseServiceType парсит тип услуги из строки
func ParseServiceType(s string) (ServiceType, error) {
	st := ServiceType(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownServiceType, s)
	}
	return st, nil
}

// Valid возвращает true для поддерживаемого типа
func (s ServiceType) Valid() bool {
	for _, st := range AllServiceTypes {
		if st == s {
			return true
		}
	}
	return false
}

// Name человекочитаемое название услуги
func (s ServiceType) Name() string {
	switch s {
	case ServiceAirportTransfer:
		return "Airport Transfer"
	case ServiceBikeRental:
		return "Bike Rental"
	case ServiceGolfCart:
		return "Golf Cart Rental"
	case ServiceYachtCharter:
		return "Yacht Charter"
	case ServiceDecoration:
		return "Decoration Services"
	case ServiceLiveMusic:
		return "Live Music"
	case ServiceIslandTour:
		return "Island Tour"
	case ServiceCustomPackage:
		return "Custom Package"
	default:
		return string(s)
	}
}

// LeadHours минимальный срок бронирования для услуги
// Декор требует 72 часа, транспорт и туры - 24
func (s ServiceType) LeadHours() int {
	if s == ServiceDecoration {
		return DecorationLeadHours
	}
	return DefaultLeadHours
}

// RangeRule правило упорядоченности дат/времени для услуги
// Правила у услуг разные и намеренно не унифицированы
func (s ServiceType) RangeRule() RangeRule {
	switch s {
	case ServiceAirportTransfer, ServiceLiveMusic:
		return RangeStrict
	case ServiceBikeRental, ServiceGolfCart, ServiceCustomPackage:
		return RangeInclusive
	default:
		return RangeNone
	}
}

// String реализует fmt.Stringer
func (s ServiceType) String() string {
	return string(s)
}
