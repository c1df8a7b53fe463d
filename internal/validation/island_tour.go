package validation

import (
	"fmt"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

// Время сбора тура фиксировано каталогом, время из формы не проверяется
func (v *Validator) islandTour(c *checker, f *domain.IslandTourForm) {
	cat := &v.catalogs.IslandTour

	if c.date("date", f.Date) {
		c.eligible("date", f.Date, cat.PickupTime, f.ServiceType().LeadHours())
	}

	c.bounded("adultCount", f.Adults, adultsBounds())
	if len(f.Children) > domain.MaxChildren {
		c.add("children", msgTooManyChildren, domain.MaxChildren)
	}
	for i, child := range f.Children {
		if child.Age < 0 || child.Age > domain.MaxChildAge {
			c.add(fmt.Sprintf("children[%d].age", i), msgChildAge, domain.MaxChildAge)
		}
	}

	c.required("pickupLocation", f.PickupLocation)
	c.maxLength("specialRequests", f.SpecialRequests, domain.MaxSpecialRequestsLength)
}
