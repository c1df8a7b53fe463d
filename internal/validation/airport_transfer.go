package validation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ConciergeBooking/internal/counter"
	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
	"github.com/m04kA/SMC-ConciergeBooking/internal/eligibility"
)

func (v *Validator) airportTransfer(c *checker, f *domain.AirportTransferForm) {
	cat := &v.catalogs.AirportTransfer

	// Прилет
	dateOK := c.date("arrivalDate", f.ArrivalDate)
	timeOK := c.clock("arrivalTime", f.ArrivalTime, true)
	if dateOK {
		c.eligible("arrivalDate", f.ArrivalDate, f.ArrivalTime, f.ServiceType().LeadHours())
	}
	c.required("airline", f.Airline)
	c.required("flightNumber", f.FlightNumber)

	// Обратный рейс: поля обязательны только при IsRoundTrip
	if f.IsRoundTrip {
		returnDateOK := c.date("returnDate", f.ReturnDate)
		returnTimeOK := c.clock("returnTime", f.ReturnTime, true)
		c.required("returnAirline", f.ReturnAirline)
		c.required("returnFlightNumber", f.ReturnFlightNumber)

		if dateOK && timeOK && returnDateOK && returnTimeOK {
			c.rangeOrdered(f.ServiceType().RangeRule(), "returnDate", msgReturnOrder,
				eligibility.Combine(f.ArrivalDate, f.ArrivalTime),
				eligibility.Combine(f.ReturnDate, f.ReturnTime))
		}
	}

	// Пассажиры
	c.bounded("adultCount", f.Adults, adultsBounds())
	c.bounded("childCount", f.Children, childrenBounds())
	if f.CarSeats < 0 || f.CarSeats > f.Children {
		c.add("carSeats", msgCarSeats)
	}

	// Транспорт и вместимость
	vehicle, vehicleOK := c.option("vehicleType", f.VehicleType, cat.Vehicles)
	fleet := counter.New(domain.MinVehicleCount, domain.MinVehicleCount, domain.MaxVehicleCount)
	count := f.Vehicles()
	if !fleet.Contains(count) {
		c.add("vehicleCount", msgRange, fleet.Min(), fleet.Max())
	} else if vehicleOK && count > 1 && !cat.AllowsMultiple(vehicle.ID) {
		c.add("vehicleCount", msgMultiVehicle, multiVehicleNames(cat))
	}
	if vehicleOK {
		passengers := f.Adults + f.Children
		if passengers > vehicle.Capacity*count {
			c.errs.Add("vehicleType", capacityMessage(cat, vehicle, count, passengers))
		}
	}

	// Пункт назначения
	c.location("destination", f.Destination, "destinationAddress", f.DestinationAddress)
	c.maxLength("specialRequests", f.SpecialRequests, domain.MaxSpecialRequestsLength)
}

// capacityMessage формирует ошибку вместимости с вариантами, которые подходят
func capacityMessage(cat *domain.AirportTransferCatalog, vehicle domain.Option, count, passengers int) string {
	if count > 1 {
		return fmt.Sprintf(msgFleetCapacity, count, vehicle.Capacity*count, passengers)
	}

	var alternatives []string
	for _, opt := range cat.Vehicles {
		if opt.ID != vehicle.ID && opt.Capacity >= passengers {
			alternatives = append(alternatives, withArticle(opt.Name))
		}
	}
	for _, opt := range cat.Vehicles {
		if cat.AllowsMultiple(opt.ID) && opt.Capacity*domain.MaxVehicleCount >= passengers {
			alternatives = append(alternatives, "multiple "+displayName(opt.Name)+"s")
		}
	}

	if len(alternatives) == 0 {
		return fmt.Sprintf(msgNoVehicleFits, passengers)
	}
	return fmt.Sprintf(msgVehicleCapacity, vehicle.Name, vehicle.Capacity, passengers, strings.Join(alternatives, " or "))
}

func multiVehicleNames(cat *domain.AirportTransferCatalog) string {
	names := make([]string, 0, len(cat.MultiVehicleIDs))
	for _, id := range cat.MultiVehicleIDs {
		if opt, ok := cat.Vehicles.Find(id); ok {
			names = append(names, displayName(opt.Name)+"s")
		}
	}
	return strings.Join(names, ", ")
}

// displayName приводит название к нижнему регистру, аббревиатуры (SUV) не трогает
func displayName(name string) string {
	if strings.ToUpper(name) == name {
		return name
	}
	return strings.ToLower(name)
}

// withArticle добавляет неопределенный артикль: "a van", "an SUV"
func withArticle(name string) string {
	display := displayName(name)
	if display == "" {
		return display
	}
	vowels := "aeiou"
	if display == name && strings.ToUpper(name) == name {
		// аббревиатуры читаются по буквам
		vowels = "AEFHILMNORSX"
	}
	if strings.ContainsRune(vowels, rune(display[0])) {
		return "an " + display
	}
	return "a " + display
}
