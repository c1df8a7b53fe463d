package validation

import (
	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

func (v *Validator) yachtCharter(c *checker, f *domain.YachtCharterForm) {
	cat := &v.catalogs.YachtCharter

	if c.date("date", f.Date) {
		c.eligible("date", f.Date, f.StartTime, f.ServiceType().LeadHours())
	}
	c.clock("startTime", f.StartTime, true)
	if _, ok := cat.Duration(f.DurationHours); !ok {
		c.add("durationHours", msgDuration)
	}

	c.bounded("adultCount", f.Adults, adultsBounds())
	c.bounded("childCount", f.Children, childrenBounds())

	if yacht, ok := c.option("yachtType", f.YachtType, cat.Yachts); ok {
		if guests := f.Adults + f.Children; guests > yacht.Capacity {
			c.add("yachtType", msgYachtCapacity, yacht.Name, yacht.Capacity)
		}
	}

	if f.Catering != "" {
		if _, ok := cat.Catering.Find(f.Catering); !ok {
			c.add("catering", msgUnknownOption)
		}
	}
	for _, id := range f.WaterSports {
		if _, ok := cat.WaterSports.Find(id); !ok {
			c.add("waterSports", msgUnknownOption)
		}
	}

	if f.NeedsTransport {
		c.location("pickupLocation", f.PickupLocation, "pickupAddress", f.PickupAddress)
	}
	c.maxLength("specialRequests", f.SpecialRequests, domain.MaxSpecialRequestsLength)
}
