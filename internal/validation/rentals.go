package validation

import (
	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

func (v *Validator) bikeRental(c *checker, f *domain.BikeRentalForm) {
	cat := &v.catalogs.BikeRental

	v.rentalPeriod(c, f, f.StartDate, f.EndDate, f.PickupTime)

	c.bounded("adultCount", f.Adults, adultsBounds())
	c.bounded("childCount", f.Children, childrenBounds())

	// Один велосипед на каждого участника
	riders := f.Adults + f.Children
	if total := c.selections("bikes", f.Bikes, cat.Bikes); !c.errs.Has("bikes") && total != riders {
		c.add("bikes", msgBikeCount, riders)
	}

	c.required("location", f.Location)
	if f.DeliveryToHotel {
		c.required("hotelName", f.HotelName)
	}
	c.maxLength("specialRequests", f.SpecialRequests, domain.MaxSpecialRequestsLength)
}

func (v *Validator) golfCart(c *checker, f *domain.GolfCartForm) {
	cat := &v.catalogs.GolfCart

	v.rentalPeriod(c, f, f.StartDate, f.EndDate, f.PickupTime)

	c.bounded("guestCount", f.Guests, guestsBounds())

	// Суммарная вместимость выбранных каров не меньше числа гостей
	total := c.selections("carts", f.Carts, cat.Carts)
	if !c.errs.Has("carts") {
		if total == 0 {
			c.add("carts", msgSelectCart)
		} else if seats := seatCount(f.Carts, cat.Carts); seats < f.Guests {
			c.add("carts", msgCartCapacity, seats, f.Guests)
		}
	}

	if f.Delivery {
		c.required("deliveryAddress", f.DeliveryAddress)
	}
	c.maxLength("deliveryAddress", f.DeliveryAddress, domain.MaxAddressLength)
	c.maxLength("specialRequests", f.SpecialRequests, domain.MaxSpecialRequestsLength)
}

// rentalPeriod проверяет даты аренды и время выдачи
func (v *Validator) rentalPeriod(c *checker, form domain.Form, start, end, pickupTime string) {
	startOK := c.date("startDate", start)
	endOK := c.date("endDate", end)
	c.clock("pickupTime", pickupTime, false)

	if startOK {
		date, hhmm := form.EligibilityDateTime()
		c.eligible("startDate", date, hhmm, form.ServiceType().LeadHours())
	}
	if startOK && endOK {
		c.rangeOrdered(form.ServiceType().RangeRule(), "endDate", msgEndBeforeStart, start, end)
	}
}

func seatCount(selected []domain.Selection, options domain.Options) int {
	seats := 0
	for _, sel := range selected {
		if opt, ok := options.Find(sel.ID); ok {
			seats += opt.Capacity * sel.Quantity
		}
	}
	return seats
}
